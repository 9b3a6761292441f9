// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/util"
)

// Get - verify that a set of listener parameters are valid
// and return the certificate
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if "" == certificate || "" == key {
		log.Errorf("%s: missing certificate or key", name)
		return nil, fin, fault.MissingCertificate
	}

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// openssl x509 -outform DER -in sbt-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// Generate - create a self-signed certificate and key pair
func Generate(organisation string, validity time.Duration, hosts []string) (string, string, error) {
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(organisation, validUntil, false, hosts)
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}

// GenerateFiles - create a certificate and key pair as files,
// existing files are never overwritten
func GenerateFiles(organisation string, hosts []string, certificateFile string, keyFile string) error {
	if util.EnsureFileExists(certificateFile) || util.EnsureFileExists(keyFile) {
		return fault.AlreadyInitialised
	}

	cert, key, err := Generate(organisation, 10*365*24*time.Hour, hosts)
	if nil != err {
		return err
	}
	if err = os.WriteFile(certificateFile, []byte(cert), 0666); nil != err {
		return err
	}
	if err = os.WriteFile(keyFile, []byte(key), 0600); nil != err {
		_ = os.Remove(certificateFile)
		return err
	}
	return nil
}
