// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ConfigurationIsNotStruct = InvalidError("configuration is not a struct pointer")
	DatabaseIsReadOnly       = ProcessError("database is read only")
	DatabaseVersionMismatch  = ProcessError("database version mismatch")
	InvalidAnomalyScore      = InvalidError("anomaly score is not a finite number")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidIPAddress         = InvalidError("invalid IP address")
	InvalidPrivateKey        = InvalidError("invalid private key")
	InvalidPublicKey         = InvalidError("invalid public key")
	InvalidSelector          = InvalidError("invalid query selector")
	KeyFileExists            = ExistsError("key file already exists")
	MalformedPayload         = InvalidError("malformed payload")
	MissingCertificate       = InvalidError("missing client certificate")
	MissingIdentifier        = InvalidError("missing identifier")
	MissingIdentity          = AuthorisationError("missing caller identity")
	MissingOrganisation      = InvalidError("certificate has no organisation")
	MissingParameters        = InvalidError("missing parameters")
	NotInitialised           = NotFoundError("not initialised")
	PermissionDenied         = PermissionError("permission denied")
	PolicyAlreadyExists      = ExistsError("access policy already exists")
	PolicyNotFound           = NotFoundError("access policy not found")
	RateLimiting             = ProcessError("rate limiting")
	RecordAlreadyExists      = ExistsError("supply chain data already exists")
	RecordNotFound           = NotFoundError("supply chain data not found")
	ReservedIdentifier       = InvalidError("identifier uses reserved prefix")
	SerialisationFailed      = ProcessError("serialisation failed")
	TransactionInProgress    = ProcessError("transaction already in progress")
	TransactionIsClosed      = ProcessError("transaction is closed")
	Unauthorised             = AuthorisationError("unauthorised")
	UnknownRule              = InvalidError("unknown authorisation rule")
	UntrustedCertificate     = AuthorisationError("untrusted client certificate")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e PermissionError) Error() string    { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrAuthorisation(e error) bool { var t AuthorisationError; return errors.As(e, &t) }
func IsErrExists(e error) bool        { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool       { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool      { var t NotFoundError; return errors.As(e, &t) }
func IsErrPermission(e error) bool    { var t PermissionError; return errors.As(e, &t) }
func IsErrProcess(e error) bool       { var t ProcessError; return errors.As(e, &t) }
