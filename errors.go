/*
 * errors.go, part of gomc.
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

import "fmt"

/*There are two failure channels in this package. Bad input (malformed
 * serialized records, impossible volumes, capacity mismatches between groups)
 * is reported through the Error type below. Contract violations (an elastic
 * range span outside its window, a touched offset past a group's size) mean
 * the *calling* move is buggy and continuing risks silent state corruption,
 * so those panic with a PanicMsg instead of returning.*/

// Errorer is the interface for errors in this module. The Decorate method
// allows callers to add information (normally the caller's name) to the
// error as it travels up the stack, without wrapping it in another type.
// Critical distinguishes configuration errors, which should stop a run,
// from resource-exhaustion errors which a move can react to by abstaining.
type Errorer interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// Error is the general error type for the mc package. It fulfills Errorer.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("gomc: %s", err.message)
}

// Decorate adds new information to the error and returns the
// accumulated decoration slice. An empty string adds nothing.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error means the run cannot sensibly continue.
func (err Error) Critical() bool { return err.critical }

// errDecorate asserts that err implements Errorer and decorates it with the
// caller's name before returning it. Calling it on any other error panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Errorer)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is the message type used for contract-violation panics. It
// satisfies the error interface so recovered values stay inspectable,
// but it is never returned; for returnable failures use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrSpanOutsideWindow = PanicMsg("gomc: elastic range span outside its window")
	ErrOffsetOutOfRange  = PanicMsg("gomc: touched offset out of range in sync")
	ErrGroupRelocation   = PanicMsg("gomc: group relocation error")
	ErrNoSuchType        = PanicMsg("gomc: no catalog entry for type id")
	ErrBadResize         = PanicMsg("gomc: resize beyond range capacity")
)
