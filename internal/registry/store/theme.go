package store

// SetDarkTheme records the theme preference. Persisted across
// restarts via the snapshot whitelist.
func (s *Store) SetDarkTheme(dark bool) {
	s.dispatch(func(st *State) {
		st.DarkTheme = dark
	})
}

// ToggleTheme flips the preference.
func (s *Store) ToggleTheme() {
	s.dispatch(func(st *State) {
		st.DarkTheme = !st.DarkTheme
	})
}
