package jwtx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewAccessClaimsJTIFailure(t *testing.T) {
	errEntropy := errors.New("entropy exhausted")
	orig := generateJTI
	generateJTI = func() (string, error) { return "", errEntropy }
	t.Cleanup(func() { generateJTI = orig })

	_, err := NewAccessClaims("operator", "staffdb", time.Minute, time.Now())
	require.ErrorIs(t, err, errEntropy)

	_, err = NewJTI()
	require.ErrorIs(t, err, errEntropy)
}
