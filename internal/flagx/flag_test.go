package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"-config=alt.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "both forms present, order preserved",
			args:         []string{"-config=first.json", "-c", "second.json", "-x", "1"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=first.json", "-c", "second.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value followed by another flag",
			args:         []string{"-c", "-a", "x"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	assert.Equal(t, "cfg.json", JsonConfigFlags([]string{"-a", "x", "-c", "cfg.json"}))
	assert.Equal(t, "long.json", JsonConfigFlags([]string{"-config=long.json"}))
	assert.Equal(t, "", JsonConfigFlags([]string{"-a", "x"}))
}

func TestEnvFileFlags(t *testing.T) {
	assert.Equal(t, ".env.local", EnvFileFlags([]string{"-e", ".env.local", "-c", "cfg.json"}))
	assert.Equal(t, "prod.env", EnvFileFlags([]string{"-env", "prod.env"}))
	assert.Equal(t, "", EnvFileFlags(nil))
}
