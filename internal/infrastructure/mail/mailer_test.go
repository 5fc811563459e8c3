package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHost(t *testing.T) {
	tests := []struct {
		service, host string
		want          string
		wantErr       error
	}{
		{service: "gmail", want: "smtp.gmail.com"},
		{service: " Gmail ", want: "smtp.gmail.com"},
		{service: "gmail", host: "mail.internal", want: "mail.internal"},
		{host: "smtp.example.com", want: "smtp.example.com"},
		{service: "carrier-pigeon", wantErr: ErrNoTransport},
		{wantErr: ErrNoTransport},
	}
	for _, tc := range tests {
		got, err := resolveHost(tc.service, tc.host)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestNew_SelectsTransport(t *testing.T) {
	_, err := New(Config{Service: "gmail"})
	assert.ErrorIs(t, err, ErrNoSender)

	m, err := New(Config{From: "noreply@example.com", ResendAPIKey: "re_test"})
	require.NoError(t, err)
	assert.IsType(t, &ResendMailer{}, m)

	m, err = New(Config{From: "noreply@example.com", Service: "gmail", Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	_, err = New(Config{From: "noreply@example.com"})
	assert.ErrorIs(t, err, ErrNoTransport)
}
