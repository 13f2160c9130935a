/*
 * units.go, part of gomc.
 *
 * Copyright 2026 The gomc developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mc

import "math"

//Internal units: energies in kT, lengths in angstrom, charges in electron
//units, dipole moments in electron-angstrom, concentrations and pressures
//in particles per cubic angstrom, angles in radians.

// Physical constants.
const (
	E0     = 8.85419e-12  // vacuum permittivity [C^2/(J*m)]
	Ec     = 1.602177e-19 // elementary charge [C]
	KB     = 1.380658e-23 // Boltzmann's constant [J/K]
	NAv    = 6.022137e23  // Avogadro's number [1/mol]
	CLight = 299792458.0  // speed of light [m/s]
	RGas   = KB * NAv     // molar gas constant [J/(K*mol)]
)

// Conversion factors to internal units.
const (
	Debye = 0.208194334424626 // 1 Debye in eA
	Deg   = math.Pi / 180     // 1 degree in radians
	Nm    = 10.0              // 1 nanometer in angstrom
	Bohr  = 0.52917721092     // 1 bohr in angstrom
	Liter = 1e27              // 1 liter in cubic angstrom
	Molar = NAv / Liter       // 1 mol/l in particles per cubic angstrom
)

// KT returns the thermal energy in Joule at temperature temp (Kelvin).
func KT(temp float64) float64 {
	return temp * KB
}

// BjerrumLength returns the Bjerrum length in angstrom for the given
// relative dielectric constant and temperature (Kelvin).
func BjerrumLength(epsilonR, temp float64) float64 {
	return Ec * Ec / (4 * math.Pi * E0 * epsilonR * 1e-10 * KT(temp))
}

// KJMol2KT converts an energy in kJ/mol to kT per particle at temperature
// temp (Kelvin).
func KJMol2KT(u, temp float64) float64 {
	return u / KT(temp) / NAv * 1e3
}

// KCalMol2KT converts an energy in kcal/mol to kT per particle.
func KCalMol2KT(u, temp float64) float64 {
	return KJMol2KT(u*4.1868, temp)
}
