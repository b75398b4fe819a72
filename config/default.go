// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/constant"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/where"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a human readable representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.EmbyCon + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.EmbyServer, "", "Base URL of the Emby server, e.g. http://localhost:8096")
	register(key.EmbyUserID, "", "Emby user id used for item lookups and session reporting")
	register(key.EmbyAccessToken, "", "Emby access token sent with every request")
	register(key.EmbyDeviceID, "", "Device id reported to the server.\nGenerated on first run when empty")
	register(key.PlaybackSelectAction, 0, "Default action when a media item is selected.\nValues 2 and 3 mean auto-resume; anything else triggers a one-time prompt to turn auto-resume on")
	register(key.PlaybackJumpBackSeconds, 10, "Seconds to jump back from a resume point before playback continues")
	register(key.PlaybackAddEpisodeNumber, true, "Prefix episode titles with a zero padded episode number")
	register(key.PlaybackMaxBitrate, 0, "Maximum video bitrate requested when transcoding. 0 means no cap")
	register(key.Player, "mpv", "Media player to use (e.g., mpv)")
	register(key.PromptDeleteEpisodePercentage, 100, "Prompt to delete an episode once watched past this percentage (1-100).\n100 disables the prompt")
	register(key.PromptDeleteMoviePercentage, 100, "Prompt to delete a movie once watched past this percentage (1-100).\n100 disables the prompt")
	register(key.PromptPlayNextPercentage, 100, "Offer the next episode once watched past this percentage (1-100).\n100 disables the prompt")
	register(key.PromptPlayNextConfirm, true, "Ask for confirmation before playing the next episode.\nWhen false the next episode starts without a prompt")
	register(key.HistorySaveOnStop, true, "Save watched percentage to the local history on playback stop")
	register(key.SignalSocket, "", "Unix socket path for the play-request signal listener.\nDefaults to a per-user runtime path when empty")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

// Save persists a single setting change to the active configuration file.
// Used for one-time convenience nudges such as turning auto-resume on.
func Save(k string, v any) error {
	viper.Set(k, v)
	return viper.WriteConfigAs(filepath.Join(where.Config(), constant.EmbyCon+".toml"))
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"value": func(k string) any { return viper.Get(k) },
}).Parse(`{{ .Description }}
Key:     {{ .Key }}
Env:     {{ .Env }}
Value:   {{ value .Key }}
Default: {{ .Value }}`))
