// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type LengthError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AccountBanned             = InvalidError("account is banned")
	AlreadyInitialised        = ExistsError("already initialised")
	BalanceKeyOccupied        = ExistsError("owner already holds a token of this class")
	ConfigurationError        = InvalidError("configuration error")
	CounterUnderflow          = InvariantError("supply counter underflow")
	DatabaseIsNotSet          = ProcessError("database is not set")
	DowngradeDatabase         = InvalidError("database version is newer than this program")
	FromClassWithoutIssuer    = InvalidError("issuer must be defined if from_class is defined")
	HandshakeFailed           = ProcessError("target call failed, deposit refunded")
	InsufficientDeposit       = LimitError("attached deposit does not cover storage")
	InvalidAccount            = InvalidError("invalid account")
	InvalidCount              = InvalidError("invalid count")
	InvalidFromToken          = InvalidError("from_token, if set, must be >= 1")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidIssuerTarget       = InvalidError("invalid handshake target")
	InvalidLimit              = InvalidError("limit must be bigger than 0")
	InvalidPackedToken        = RecordError("invalid packed token")
	InvalidProof              = InvalidError("invalid proof of personhood")
	InvalidRecoverTarget      = InvalidError("recover source and destination must differ")
	MissingCertificate        = NotFoundError("missing certificate")
	MissingParameters         = InvalidError("missing parameters")
	MissingToken              = InvariantError("token expected to exist is missing")
	NotAuthorised             = InvalidError("caller is not the registry authority")
	NotAvailableInCurrentMode = InvalidError("not available in current mode")
	NotHuman                  = InvalidError("caller is not a verified human")
	NotInitialised            = NotFoundError("not initialised")
	NotTokenOwner             = NotFoundError("token not found or not issued by caller")
	RateLimiting              = LimitError("rate limiting")
	RecoverInProgress         = ExistsError("another issuer is recovering this account")
	ReferenceTooLong          = InvalidError("reference too long")
	TokenNotFound             = NotFoundError("token not found")
	TooManyTokens             = LimitError("too many tokens for one call")
	UnknownIssuer             = NotFoundError("issuer is not registered")
	ZeroClass                 = InvalidError("class id must be non-zero")
)

// the error interface methods
func (e GenericError) Error() string   { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e LimitError) Error() string     { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrLimit(e error) bool     { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool    { _, ok := e.(RecordError); return ok }
