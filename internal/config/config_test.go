package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/errs"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "jiebacut.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadParsesConfigFile(t *testing.T) {
	path := writeConfigFile(t, "base_dict: /tmp/dict.txt\nmodel: /tmp/model.txt\nweight_policy: min\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dict.txt", cfg.BaseDictPath)
	assert.Equal(t, "/tmp/model.txt", cfg.ModelPath)
	assert.Equal(t, "min", cfg.WeightPolicy)
}

func TestLoadRequiresBaseDictAndModel(t *testing.T) {
	path := writeConfigFile(t, "weight_policy: max\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestLoadDefaultsWeightPolicyToMedian(t *testing.T) {
	path := writeConfigFile(t, "base_dict: /tmp/dict.txt\nmodel: /tmp/model.txt\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "median", cfg.WeightPolicy)
}

func TestParseWeightPolicy(t *testing.T) {
	cases := []struct {
		in   string
		want dict.WeightPolicy
	}{
		{"", dict.WeightMedian},
		{"median", dict.WeightMedian},
		{"min", dict.WeightMin},
		{"max", dict.WeightMax},
	}
	for _, c := range cases {
		cfg := &Config{WeightPolicy: c.in}
		got, err := cfg.ParseWeightPolicy()
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseWeightPolicyRejectsUnknownValue(t *testing.T) {
	cfg := &Config{WeightPolicy: "bogus"}
	_, err := cfg.ParseWeightPolicy()
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
