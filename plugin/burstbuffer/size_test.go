package burstbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizeSuffixes(t *testing.T) {
	cases := []struct {
		tok  string
		want Size
	}{
		{"4096", Size(4096)},
		{"512M", Size(1)},
		{"4G", Size(4)},
		{"2T", Size(2048)},
		{"1P", Size(1048576)},
	}
	for _, c := range cases {
		got, err := ParseSize(c.tok)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, c.tok)
	}
}

func TestParseSizeNodesTag(t *testing.T) {
	got, err := ParseSize("8N")
	require.NoError(t, err)
	assert.True(t, got.InNodes())
	assert.Equal(t, uint64(8), got.Magnitude())
	assert.Equal(t, "8N", got.String())
}

func TestParseSizeRejectsGarbage(t *testing.T) {
	_, err := ParseSize("banana")
	assert.Error(t, err)
	_, err = ParseSize("-5G")
	assert.Error(t, err)
}

func TestSizeFromSpecExtractsToken(t *testing.T) {
	sz, err := sizeFromSpec("access=striped type=scratch size=16G pool=bb")
	require.NoError(t, err)
	assert.Equal(t, Size(16), sz)
}

func TestSizeFromSpecMissingSizeIsZero(t *testing.T) {
	sz, err := sizeFromSpec("access=striped type=scratch")
	require.NoError(t, err)
	assert.Equal(t, Size(0), sz)
}

func TestSizeAddUpgradesToNodes(t *testing.T) {
	gb := Size(4)
	nodes, _ := ParseSize("2N")
	sum := gb.Add(nodes)
	assert.True(t, sum.InNodes())
	assert.Equal(t, uint64(6), sum.Magnitude())
}

func TestSizeSubFlooredAtZero(t *testing.T) {
	small := Size(2)
	big := Size(5)
	assert.Equal(t, Size(0), small.Sub(big))
}
