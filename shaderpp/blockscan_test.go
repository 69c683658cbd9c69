package shaderpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBlockEndSimple(t *testing.T) {
	buf := "BODY@endTAIL"
	sub := newSubString(&buf, 0)

	require.True(t, findBlockEnd(&sub))
	assert.Equal(t, "BODY", sub.Text())
}

func TestFindBlockEndHonorsNesting(t *testing.T) {
	buf := "A@foreach(x, 0, 1)B@endC@endD"
	sub := newSubString(&buf, 0)

	require.True(t, findBlockEnd(&sub))
	assert.Equal(t, "A@foreach(x, 0, 1)B@endC", sub.Text())
}

func TestFindBlockEndTracksEveryBlockKind(t *testing.T) {
	buf := "@property(p)x@end@piece(q)y@end@endZ"
	sub := newSubString(&buf, 0)

	require.True(t, findBlockEnd(&sub))
	assert.Equal(t, "@property(p)x@end@piece(q)y@end", sub.Text())
}

func TestFindBlockEndIgnoresNonBlockDirectives(t *testing.T) {
	buf := "x@insertpiece(p)y@endz"
	sub := newSubString(&buf, 0)

	require.True(t, findBlockEnd(&sub))
	assert.Equal(t, "x@insertpiece(p)y", sub.Text())
}

func TestFindBlockEndUnclosed(t *testing.T) {
	for _, buf := range []string{
		"no end marker at all",
		"opens@foreach(i, 0, 1)but never closes",
		"@property(p)one@end", // closes the nested block, not the original
	} {
		t.Run(buf, func(t *testing.T) {
			sub := newSubString(&buf, 0)
			assert.False(t, findBlockEnd(&sub))
		})
	}
}
