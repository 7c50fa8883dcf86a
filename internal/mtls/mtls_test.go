package mtls

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfSigned returns a freshly generated certificate and key in PEM form.
func selfSigned(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "merchant test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		IsCA:         true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	return certPEM, keyPEM
}

func TestEmpty(t *testing.T) {
	assert.True(t, Material{}.Empty())
	assert.False(t, Material{CA: []byte("x")}.Empty())
	assert.False(t, Material{Cert: []byte("x"), Key: []byte("y")}.Empty())
}

func TestLoadPEMInline(t *testing.T) {
	inline := "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n"
	got, err := LoadPEM(inline)
	require.NoError(t, err)
	assert.Equal(t, []byte(inline), got)
}

func TestLoadPEMFromFile(t *testing.T) {
	certPEM, _ := selfSigned(t)
	p := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(p, certPEM, 0o600))

	got, err := LoadPEM(p)
	require.NoError(t, err)
	assert.Equal(t, certPEM, got)

	_, err = LoadPEM(filepath.Join(t.TempDir(), "missing.pem"))
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	certPEM, keyPEM := selfSigned(t)

	cfg, err := Material{Cert: certPEM, Key: keyPEM, CA: certPEM}.Config()
	require.NoError(t, err)
	assert.Len(t, cfg.Certificates, 1)
	assert.NotNil(t, cfg.RootCAs)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
}

func TestConfigCAOnly(t *testing.T) {
	certPEM, _ := selfSigned(t)

	cfg, err := Material{CA: certPEM}.Config()
	require.NoError(t, err)
	assert.Empty(t, cfg.Certificates)
	assert.NotNil(t, cfg.RootCAs)
}

func TestConfigErrors(t *testing.T) {
	certPEM, keyPEM := selfSigned(t)
	otherCert, _ := selfSigned(t)

	cases := []struct {
		name     string
		material Material
		want     error
	}{
		{"cert without key", Material{Cert: certPEM}, ErrKey},
		{"key without cert", Material{Key: keyPEM}, ErrCertificate},
		{"garbage key", Material{Cert: certPEM, Key: []byte("not a key")}, ErrKey},
		{"mismatched pair", Material{Cert: otherCert, Key: keyPEM}, ErrCertificate},
		{"garbage ca", Material{CA: []byte("not a ca bundle")}, ErrCA},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.material.Config()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConfigDecryptsLegacyEncryptedKey(t *testing.T) {
	certPEM, keyPEM := selfSigned(t)

	block, _ := pem.Decode(keyPEM)
	require.NotNil(t, block)
	//nolint:staticcheck // the legacy format is what Swish issues.
	enc, err := x509.EncryptPEMBlock(rand.Reader, block.Type, block.Bytes, []byte("swish"), x509.PEMCipherAES256)
	require.NoError(t, err)
	encKeyPEM := pem.EncodeToMemory(enc)

	cfg, err := Material{Cert: certPEM, Key: encKeyPEM, CA: certPEM, Passphrase: "swish"}.Config()
	require.NoError(t, err)
	assert.Len(t, cfg.Certificates, 1)

	_, err = Material{Cert: certPEM, Key: encKeyPEM, Passphrase: "wrong"}.Config()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKey)
}
