package validkit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
)

func TestLeafValidator(t *testing.T) {
	t.Parallel()

	nonEmpty := validkit.NewLeaf("street", func(s string) bool { return s != "" })

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()

		res, err := nonEmpty.Validate("Main St")
		require.NoError(t, err)
		assert.True(t, res.IsValid())
		assert.Equal(t, "Main St", res.MustValue())
	})

	t.Run("invalid value keeps value", func(t *testing.T) {
		t.Parallel()

		res, err := nonEmpty.Validate("")
		require.NoError(t, err)
		assert.True(t, res.IsInvalid())
		assert.Equal(t, "", res.MustValue())
	})

	t.Run("should validate", func(t *testing.T) {
		t.Parallel()

		assert.True(t, nonEmpty.ShouldValidate())
		assert.Equal(t, "street", nonEmpty.TypeName())
	})

	t.Run("record entry delegates to validate", func(t *testing.T) {
		t.Parallel()

		res, err := nonEmpty.ValidateRecord("Main St", "some.path", "Root", nil, nil)
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})
}

type signedValue struct {
	Payload   string
	Signature string
}

func TestDynamicLeafValidator(t *testing.T) {
	t.Parallel()

	signed := validkit.NewDynamicLeaf("signed_payload",
		func(v signedValue) (string, bool) { return v.Signature, v.Signature != "" },
		func(v signedValue, sig string) bool { return strings.HasPrefix(sig, "sig:"+v.Payload) },
	)

	t.Run("valid with argument", func(t *testing.T) {
		t.Parallel()

		res, err := signed.Validate(signedValue{Payload: "abc", Signature: "sig:abc"})
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})

	t.Run("invalid with argument", func(t *testing.T) {
		t.Parallel()

		res, err := signed.Validate(signedValue{Payload: "abc", Signature: "sig:other"})
		require.NoError(t, err)
		assert.True(t, res.IsInvalid())
	})

	t.Run("missing argument is an error not invalid", func(t *testing.T) {
		t.Parallel()

		_, err := signed.Validate(signedValue{Payload: "abc"})
		require.Error(t, err)
		assert.ErrorIs(t, err, validkit.ErrMissingArgument)
		assert.Contains(t, err.Error(), "signed_payload")
	})
}

func TestIgnoreValidator(t *testing.T) {
	t.Parallel()

	ignore := validkit.NewIgnore[int]("internal_counter")

	res, err := ignore.Validate(99)
	require.NoError(t, err)
	assert.Equal(t, validkit.TagNotApplicable, res.Tag())
	assert.Equal(t, 99, res.MustValue())
	assert.False(t, ignore.ShouldValidate())
}
