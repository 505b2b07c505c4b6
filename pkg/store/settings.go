package store

// Audio defaults.
const (
	DefaultVolume = 0.7
	DefaultMuted  = false
)

// Settings are the player's audio preferences.
type Settings struct {
	Volume float64
	Muted  bool
}

// LoadSettings reads the audio settings, applying defaults for missing keys.
// Volume is clamped to [0, 1].
func LoadSettings(s Store) Settings {
	return Settings{
		Volume: clampVolume(Float(s, KeyVolume, DefaultVolume)),
		Muted:  Bool(s, KeyMuted, DefaultMuted),
	}
}

// SaveSettings writes both audio settings
func SaveSettings(s Store, settings Settings) error {
	if err := SetFloat(s, KeyVolume, clampVolume(settings.Volume)); err != nil {
		return err
	}
	return SetBool(s, KeyMuted, settings.Muted)
}

// EffectiveVolume is the volume to play at, zero when muted
func (st Settings) EffectiveVolume() float64 {
	if st.Muted {
		return 0
	}
	return st.Volume
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
