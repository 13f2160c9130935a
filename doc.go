/*
 * doc.go, part of gomc.
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

/*Package mc implements the particle/state core of a Monte Carlo molecular
simulation engine: particles with composable chemical capabilities, atom and
molecule type catalogs, groups of particles over a shared buffer with O(1)
logical activation/deactivation (for grand-canonical moves), boundary
geometries, and the trial/accepted state synchronization protocol.


	**gomc capabilities**


    Particles carrying any subset of {charge, radius, dipole, quadrupole,
	spherocylinder} capabilities, rotated and serialized per-capability.

    Atom- and molecule-type catalogs, built once at startup and read-only
	thereafter, addressable by stable integer id.

    Groups of particles as elastic windows into a shared buffer, with
	translate/rotate/wrap/unwrap operations under periodic boundaries.

    Logical insertion/removal of particles without reallocation, so
	grand-canonical moves never invalidate other groups' windows.

    Minimal-diff synchronization of an accepted Space from a trial Space,
	with cost proportional to the size of the change, not the system.

    Weighted molecular conformation selection and bounded-retry random
	insertion for grand-canonical and Widom-style moves.

    Reproducible, serializable random number state for auditable runs.

    Compressed state snapshots for checkpoint/restart.

The Monte Carlo moves themselves, energy evaluation, structure-file readers
and analysis live outside this module; they consume the contracts exposed
here.
*/
package mc
