package bcrypt

import (
	"testing"

	"github.com/eksblowfish/bcrypt/internal/radix64"
	"github.com/stretchr/testify/require"
)

func decodeSalt(t *testing.T, s string) []byte {
	t.Helper()

	b, err := radix64.Decode(s)
	require.NoError(t, err)

	return b
}

func TestHashPasswordSaltVectors(t *testing.T) {
	t.Parallel()

	vectors := []struct {
		name     string
		password string
		cost     int
		salt     string
		want     string
	}{
		{
			name:     "empty password",
			password: "",
			cost:     6,
			salt:     "DCq7YPn5Rq63x1Lad4cll.",
			want:     "$2a$06$DCq7YPn5Rq63x1Lad4cll.TV4S6ytwfsfvkgY8jIucDrjc8deX1s.",
		},
		{
			name:     "single character",
			password: "a",
			cost:     8,
			salt:     "cfcvVd2aQ8CMvoMpP2EBfe",
			want:     "$2a$08$cfcvVd2aQ8CMvoMpP2EBfeodLEkkFJ9umNEfPD18.hUF62qqlC/V.",
		},
		{
			name:     "short password",
			password: "abc",
			cost:     10,
			salt:     "WvvTPHKwdBJ3uk0Z37EMR.",
			want:     "$2a$10$WvvTPHKwdBJ3uk0Z37EMR.hLA2W6N9AEBhEgrAOljy2Ae5MtaSIUi",
		},
		{
			name:     "alphabet password",
			password: "abcdefghijklmnopqrstuvwxyz",
			cost:     12,
			salt:     "D4G5f18o7aMMfwasBL7Gpu",
			want:     "$2a$12$D4G5f18o7aMMfwasBL7GpuQWuP3pkrZrOAnqP.bmezbMng.QwJ/pG",
		},
		{
			name:     "punctuation password",
			password: "~!@#$%^&*()      ~!@#$%^&*()PNBFRD",
			cost:     10,
			salt:     "LgfYWkbzEvQ4JakH7rOvHe",
			want:     "$2a$10$LgfYWkbzEvQ4JakH7rOvHe0y8pHKF9OaFgwUZ2q7W2FFZmZzJYlfS",
		},
	}

	for _, v := range vectors {
		v := v

		t.Run(v.name, func(t *testing.T) {
			t.Parallel()

			salt := decodeSalt(t, v.salt)

			got, err := HashPasswordSalt([]byte(v.password), salt, v.cost)
			require.NoError(t, err)
			require.Equal(t, v.want, got)
		})
	}
}

func TestCheckPasswordMatchesKnownHash(t *testing.T) {
	t.Parallel()

	ok, err := CheckPassword(
		[]byte("correctbatteryhorsestapler"),
		"$2a$12$mACnM5lzNigHMaf7O1py1O3vlf6.BA8k8x3IoJ.Tq3IB/2e7g61Km",
	)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	ok, err := CheckPassword(
		[]byte("not the right password"),
		"$2a$12$mACnM5lzNigHMaf7O1py1O3vlf6.BA8k8x3IoJ.Tq3IB/2e7g61Km",
	)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPasswordCheckPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := HashPasswordCost([]byte("a round trip password"), MinCost)
	require.NoError(t, err)

	ok, err := CheckPassword([]byte("a round trip password"), h)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CheckPassword([]byte("the wrong password"), h)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEmptyPasswordRoundTrips(t *testing.T) {
	t.Parallel()

	h, err := HashPasswordCost(nil, MinCost)
	require.NoError(t, err)

	ok, err := CheckPassword(nil, h)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLegacyVersionPrefixVerifies(t *testing.T) {
	t.Parallel()

	salt := decodeSalt(t, "DCq7YPn5Rq63x1Lad4cll.")

	h, err := HashPasswordSalt(nil, salt, 6)
	require.NoError(t, err)

	legacy := "$2" + h[3:]

	ok, err := CheckPassword(nil, legacy)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDifferentPasswordsProduceDifferentHashes(t *testing.T) {
	t.Parallel()

	salt := decodeSalt(t, "DCq7YPn5Rq63x1Lad4cll.")

	a, err := HashPasswordSalt([]byte("password one"), salt, MinCost)
	require.NoError(t, err)

	b, err := HashPasswordSalt([]byte("password two"), salt, MinCost)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestPasswordLengthBoundaryDiffers(t *testing.T) {
	t.Parallel()

	salt := decodeSalt(t, "DCq7YPn5Rq63x1Lad4cll.")

	base := "0123456789012345678901234567890123456789012345678901234"
	require.Len(t, base, 55)

	p55 := base
	p56 := base + "6"
	p57 := base + "67"

	h55, err := HashPasswordSalt([]byte(p55), salt, MinCost)
	require.NoError(t, err)

	h56, err := HashPasswordSalt([]byte(p56), salt, MinCost)
	require.NoError(t, err)

	h57, err := HashPasswordSalt([]byte(p57), salt, MinCost)
	require.NoError(t, err)

	require.NotEqual(t, h55, h56)
	require.NotEqual(t, h56, h57)
	require.NotEqual(t, h55, h57)
}

func TestPasswordTruncationBoundary(t *testing.T) {
	t.Parallel()

	salt := decodeSalt(t, "DCq7YPn5Rq63x1Lad4cll.")

	p71 := make([]byte, 71)
	for i := range p71 {
		p71[i] = byte('a' + i%26)
	}

	p72 := append(append([]byte{}, p71...), 'z')
	p73 := append(append([]byte{}, p72...), 'z')

	h71, err := HashPasswordSalt(p71, salt, MinCost)
	require.NoError(t, err)

	h72, err := HashPasswordSalt(p72, salt, MinCost)
	require.NoError(t, err)

	h73, err := HashPasswordSalt(p73, salt, MinCost)
	require.NoError(t, err)

	require.Equal(t, h71, h72)
	require.Equal(t, h72, h73)
}

func TestCostOutOfRangeRejected(t *testing.T) {
	t.Parallel()

	salt := decodeSalt(t, "DCq7YPn5Rq63x1Lad4cll.")

	_, err := HashPasswordSalt([]byte("x"), salt, MinCost-1)
	require.ErrorIs(t, err, ErrCostOutOfRange)

	_, err = HashPasswordSalt([]byte("x"), salt, MaxCost+1)
	require.ErrorIs(t, err, ErrCostOutOfRange)
}

func TestGenerateSaltProducesDistinctValues(t *testing.T) {
	t.Parallel()

	a, err := GenerateSalt()
	require.NoError(t, err)

	b, err := GenerateSalt()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestHashPasswordUsesDefaultCost(t *testing.T) {
	t.Parallel()

	h, err := HashPassword([]byte("a default cost password"))
	require.NoError(t, err)
	require.Equal(t, "$2a$12$", h[:7])
}

func TestCheckPasswordRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	_, err := CheckPassword([]byte("x"), "not a bcrypt hash")
	require.Error(t, err)
}
