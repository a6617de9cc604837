package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the vidq configuration
type Config struct {
	Version       int      `toml:"version"`
	TasksFile     string   `toml:"tasks_file"`
	VideosDir     string   `toml:"videos_dir"`
	LogLevel      string   `toml:"log_level"`
	MediaPatterns []string `toml:"media_patterns"`
	Download      Download `toml:"download"`
	Terminal      Terminal `toml:"terminal"`

	path string
}

// Download holds the options handed to the in-process downloader
type Download struct {
	Format            string `toml:"format"`
	OutputTemplate    string `toml:"output_template"`
	NoPlaylist        bool   `toml:"no_playlist"`
	ExtractAudio      bool   `toml:"extract_audio"`
	AudioFormat       string `toml:"audio_format"`
	AudioQuality      string `toml:"audio_quality"`
	EmbedThumbnail    bool   `toml:"embed_thumbnail"`
	RestrictFilenames bool   `toml:"restrict_filenames"`
}

// Terminal describes the external downloader process
type Terminal struct {
	Binary string   `toml:"binary"`
	Args   []string `toml:"args"`
}

// Option is a single key/value pair shown by the options command
type Option struct {
	Key   string
	Value string
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Version:       1,
		TasksFile:     "videos.txt",
		VideosDir:     "videos",
		LogLevel:      "warn",
		MediaPatterns: []string{"*.{mp3,mp4,m4a,webm,mkv,opus,flac,ogg,wav}"},
		Download: Download{
			Format:         "bestaudio/best",
			OutputTemplate: "%(title)s.%(ext)s",
			NoPlaylist:     true,
			ExtractAudio:   true,
			AudioFormat:    "mp3",
			AudioQuality:   "192",
		},
		Terminal: Terminal{
			Binary: "yt-dlp",
			Args: []string{
				"-ciw", "-x",
				"--audio-format", "mp3",
				"--audio-quality", "0",
				"-f", "bestaudio",
				"--embed-thumbnail",
				"-o", "%(title)s.%(ext)s",
				"--rm-cache-dir",
			},
		},
	}
}

// Load reads config from path, creating it with defaults if needed.
// An empty path means DefaultPath().
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	// Create with defaults if doesn't exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Defaults()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return cfg, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}

	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.path = path
	cfg.applyDefaults(md)

	return cfg, nil
}

// applyDefaults fills in any fields missing from the file
func (c *Config) applyDefaults(md toml.MetaData) {
	d := Defaults()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.TasksFile == "" {
		c.TasksFile = d.TasksFile
	}
	if c.VideosDir == "" {
		c.VideosDir = d.VideosDir
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if len(c.MediaPatterns) == 0 {
		c.MediaPatterns = d.MediaPatterns
	}
	if !md.IsDefined("download", "no_playlist") {
		c.Download.NoPlaylist = d.Download.NoPlaylist
	}
	if !md.IsDefined("download", "extract_audio") {
		c.Download.ExtractAudio = d.Download.ExtractAudio
	}
	if c.Download.Format == "" {
		c.Download.Format = d.Download.Format
	}
	if c.Download.OutputTemplate == "" {
		c.Download.OutputTemplate = d.Download.OutputTemplate
	}
	if c.Download.AudioFormat == "" {
		c.Download.AudioFormat = d.Download.AudioFormat
	}
	if c.Download.AudioQuality == "" {
		c.Download.AudioQuality = d.Download.AudioQuality
	}
	if c.Terminal.Binary == "" {
		c.Terminal.Binary = d.Terminal.Binary
	}
	if c.Terminal.Args == nil {
		c.Terminal.Args = d.Terminal.Args
	}
}

// Save writes config back to the file it was loaded from
func (c *Config) Save() error {
	path := c.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	encoder.Indent = ""
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// Path returns the file this config is bound to
func (c *Config) Path() string {
	if c.path == "" {
		return DefaultPath()
	}
	return c.path
}

// DefaultPath returns $VIDQ_CONFIG or ~/.vidq/cfg.toml
func DefaultPath() string {
	if p := os.Getenv("VIDQ_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".vidq", "cfg.toml")
}

// Options returns the download options in display order
func (c *Config) Options() []Option {
	d := c.Download
	return []Option{
		{"format", d.Format},
		{"outtmpl", d.OutputTemplate},
		{"noplaylist", strconv.FormatBool(d.NoPlaylist)},
		{"extract_audio", strconv.FormatBool(d.ExtractAudio)},
		{"audio_format", d.AudioFormat},
		{"audio_quality", d.AudioQuality},
		{"embed_thumbnail", strconv.FormatBool(d.EmbedThumbnail)},
		{"restrict_filenames", strconv.FormatBool(d.RestrictFilenames)},
	}
}
