package fingerprint_test

import (
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/fingerprint"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func samplePackage() domain.PackageDefinition {
	return domain.PackageDefinition{
		ID:         "pkg1",
		Name:       "go-agent",
		AutoUpdate: true,
		Repository: domain.RepositoryRef{ID: "repo1", Name: "yum"},
		Configuration: []domain.ConfigurationProperty{
			{Key: "PACKAGE_SPEC", Value: "go-agent-*"},
			{Key: "TOKEN", EncryptedValue: "AES:abc"},
		},
	}
}

func TestOf_Deterministic(t *testing.T) {
	p1 := samplePackage()
	p2 := samplePackage()

	fp := fingerprint.Of(&p1)
	require.Len(t, fp, 32)
	require.Equal(t, fp, fingerprint.Of(&p2))
	require.Equal(t, fp, fingerprint.Of(&p1), "fingerprint must be reproducible")
}

func TestOf_IgnoresNonContentFields(t *testing.T) {
	p := samplePackage()
	before := fingerprint.Of(&p)

	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	p.Repository.Name = "renamed"

	require.Equal(t, before, fingerprint.Of(&p))
}

func TestOf_ChangesWithContent(t *testing.T) {
	base := samplePackage()
	baseFP := fingerprint.Of(&base)

	tests := []struct {
		name   string
		mutate func(p *domain.PackageDefinition)
	}{
		{name: "id", mutate: func(p *domain.PackageDefinition) { p.ID = "pkg2" }},
		{name: "name", mutate: func(p *domain.PackageDefinition) { p.Name = "go-server" }},
		{name: "auto update", mutate: func(p *domain.PackageDefinition) { p.AutoUpdate = false }},
		{name: "repository", mutate: func(p *domain.PackageDefinition) { p.Repository.ID = "repo2" }},
		{name: "property value", mutate: func(p *domain.PackageDefinition) {
			p.Configuration[0].Value = "go-server-*"
		}},
		{name: "secure value", mutate: func(p *domain.PackageDefinition) {
			p.Configuration[1].EncryptedValue = "AES:def"
		}},
		{name: "property order", mutate: func(p *domain.PackageDefinition) {
			p.Configuration[0], p.Configuration[1] = p.Configuration[1], p.Configuration[0]
		}},
		{name: "extra property", mutate: func(p *domain.PackageDefinition) {
			p.Configuration = append(p.Configuration, domain.ConfigurationProperty{Key: "ARCH"})
		}},
		{name: "value moved to encrypted value", mutate: func(p *domain.PackageDefinition) {
			p.Configuration[0] = domain.ConfigurationProperty{Key: "PACKAGE_SPEC", EncryptedValue: "go-agent-*"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := samplePackage()
			tt.mutate(&p)
			require.NotEqual(t, baseFP, fingerprint.Of(&p))
		})
	}
}

func TestOfConfiguration_OrderInsensitive(t *testing.T) {
	a := []domain.ConfigurationProperty{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}}
	b := []domain.ConfigurationProperty{{Key: "B", Value: "2"}, {Key: "A", Value: "1"}}
	c := []domain.ConfigurationProperty{{Key: "A", Value: "1"}, {Key: "B", Value: "3"}}

	require.Equal(t, fingerprint.OfConfiguration(a), fingerprint.OfConfiguration(b))
	require.NotEqual(t, fingerprint.OfConfiguration(a), fingerprint.OfConfiguration(c))
	require.Equal(t, "A", a[0].Key, "input must not be reordered")
}
