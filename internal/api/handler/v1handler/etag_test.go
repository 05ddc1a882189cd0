package v1handler

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWireToken(t *testing.T) {
	token := WireToken("fingerprint")
	require.Regexp(t, regexp.MustCompile(`^"[0-9a-f]{32}"$`), token)
	require.Equal(t, token, WireToken("fingerprint"))
	require.NotEqual(t, token, WireToken("fingerprint2"))
	require.NotEqual(t, `"fingerprint"`, token)
}

func TestIfMatch(t *testing.T) {
	token := WireToken("fp")

	require.True(t, ifMatch(token, token))
	require.False(t, ifMatch("", token))
	require.False(t, ifMatch("W/"+token, token))
	require.False(t, ifMatch("*", token))
}

func TestIfNoneMatch(t *testing.T) {
	token := WireToken("fp")

	tests := []struct {
		header string
		want   bool
	}{
		{header: token, want: true},
		{header: "W/" + token, want: true},
		{header: `"a", ` + token, want: true},
		{header: "*", want: true},
		{header: `"a"`, want: false},
		{header: "", want: false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ifNoneMatch(tt.header, token), tt.header)
	}
}

func TestDecodePackageRequest(t *testing.T) {
	wrapped, err := decodePackageRequest([]byte(`{"package":{"id":"p","name":"n","auto_update":false,` +
		`"package_repo":{"id":"r","name":"ignored"},"configuration":[{"key":"K","encrypted_value":"E","extra":1}],` +
		`"_links":{"self":{"href":"x"}}}}`))
	require.NoError(t, err)
	require.Equal(t, "p", string(wrapped.ID))
	require.Equal(t, "n", wrapped.Name)
	require.NotNil(t, wrapped.AutoUpdate)
	require.False(t, *wrapped.AutoUpdate)
	require.Equal(t, "r", string(wrapped.RepositoryID))
	require.Len(t, wrapped.Configuration, 1)
	require.True(t, wrapped.Configuration[0].IsSecure())

	flat, err := decodePackageRequest([]byte(`{"name":null,"auto_update":null,"configuration":null,"package_repo":null}`))
	require.NoError(t, err)
	require.Nil(t, flat.AutoUpdate)
	require.Empty(t, flat.RepositoryID)
	require.Nil(t, flat.Configuration)

	_, err = decodePackageRequest([]byte(`{"configuration":[{"key":1}]}`))
	require.Error(t, err)
}
