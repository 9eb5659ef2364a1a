package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abenz1267/stringscore/pkg/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	SetExplicitDir(dir)
	t.Cleanup(func() { SetExplicitDir("") })

	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	withConfigDir(t)

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(Name, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)

	s, err := cfg.Scorer()
	require.NoError(t, err)
	assert.Equal(t, score.Scorer{}, s)
}

func TestLoadConfigFile(t *testing.T) {
	dir := withConfigDir(t)

	content := "fuzziness = 0.5\noption = \"favor_smaller_words\"\nmin_score = 0.25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stringscore.toml"), []byte(content), 0o600))

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(Name, &cfg))

	assert.InDelta(t, 0.5, cfg.Fuzziness, 1e-6)
	assert.InDelta(t, 0.25, cfg.MinScore, 1e-6)
	assert.Equal(t, "favor_smaller_words", cfg.Option)

	s, err := cfg.Scorer()
	require.NoError(t, err)
	assert.Equal(t, score.FavorSmallerWords, s.Option)
}

func TestLoadConfigEnv(t *testing.T) {
	dir := withConfigDir(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stringscore.toml"), []byte("fuzziness = 0.5\n"), 0o600))
	t.Setenv("STRINGSCORE_FUZZINESS", "0.75")
	t.Setenv("STRINGSCORE_OPTION", "reduced_long_string_penalty")

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(Name, &cfg))

	assert.InDelta(t, 0.75, cfg.Fuzziness, 1e-6)
	assert.Equal(t, "reduced_long_string_penalty", cfg.Option)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := withConfigDir(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stringscore.toml"), []byte("fuzziness = [\n"), 0o600))

	cfg := DefaultConfig()
	assert.Error(t, LoadConfig(Name, &cfg))
}

func TestConfigScorerUnknownOption(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Option = "nope"

	_, err := cfg.Scorer()
	assert.ErrorIs(t, err, score.ErrUnknownOption)
}

func TestLoadLocalEnv(t *testing.T) {
	dir := withConfigDir(t)

	require.NoError(t, LoadLocalEnv())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STRINGSCORE_TEST_LOCALENV=yes\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STRINGSCORE_TEST_LOCALENV") })

	require.NoError(t, LoadLocalEnv())
	assert.Equal(t, "yes", os.Getenv("STRINGSCORE_TEST_LOCALENV"))
}

func TestConfigFile(t *testing.T) {
	dir := withConfigDir(t)

	assert.Equal(t, "", ConfigFile(Name))

	file := filepath.Join(dir, "stringscore.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	assert.Equal(t, file, ConfigFile(Name))
}

func TestFuzzyScore(t *testing.T) {
	s, pos, start := FuzzyScore("hw", "hello world", false)
	assert.Positive(t, s)
	assert.ElementsMatch(t, []int32{0, 6}, pos)
	assert.Equal(t, int32(0), start)

	s, pos, _ = FuzzyScore("xyz", "hello world", false)
	assert.Equal(t, int32(0), s)
	assert.Empty(t, pos)

	s, _, start = FuzzyScore("world", "hello world", true)
	assert.Positive(t, s)
	assert.Equal(t, int32(6), start)
}
