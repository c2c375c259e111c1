package infra

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"strings"
)

// ParseOrGenerateSigningKey loads the RSA key used to sign session tokens.
// With an empty input a throwaway key is generated, which is fine for dev:
// sessions then just do not survive a restart.
func ParseOrGenerateSigningKey(privateKeyString string) *rsa.PrivateKey {
	if privateKeyString == "" {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			log.Fatalf("failed to generate session signing key: %s", err)
		}
		return key
	}

	// docker-compose escapes the newlines of multi-line env variables
	privateKeyString = strings.ReplaceAll(privateKeyString, "\\n", "\n")
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		log.Fatalf("failed to decode PEM block containing RSA private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		log.Fatalf("cannot parse SESSION_JWT_SIGNING_KEY: %s", err)
	}
	return privateKey
}
