package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strings"

	"github.com/driveline/rental-backend/utils"
)

func MustParseSigningKey(privateKeyString string) *rsa.PrivateKey {
	// when a multi-line env variable is passed to the docker container by docker-compose, it escapes the newlines
	privateKeyString = strings.Replace(privateKeyString, "\\n", "\n", -1)
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		log.Fatalf("failed to decode PEM block containing RSA private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		log.Fatalf("Can't load AUTHENTICATION_JWT_SIGNING_KEY private key %s", err)
	}
	return privateKey
}

// ReadParseOrGenerateSigningKey loads the JWT signing key from the env value
// or key file. With neither set, a throwaway key is generated: fine for local
// development, tokens do not survive a restart.
func ReadParseOrGenerateSigningKey(ctx context.Context, signingKeyString, signingKeyFile string) *rsa.PrivateKey {
	logger := utils.LoggerFromContext(ctx)

	if signingKeyFile != "" {
		keyBytes, err := os.ReadFile(signingKeyFile)
		if err != nil {
			log.Fatalf("Can't read signing key file %s: %s", signingKeyFile, err)
		}
		return MustParseSigningKey(string(keyBytes))
	}

	if signingKeyString != "" {
		return MustParseSigningKey(signingKeyString)
	}

	logger.WarnContext(ctx, "No JWT signing key provided, generating a random one. Tokens will be invalidated on restart.")
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("Can't generate RSA private key: %s", err)
	}
	return privateKey
}
