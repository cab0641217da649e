package registry

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// Option configures a Service.
type Option func(*Service)

// WithDebugger sets the debugger for logging.
func WithDebugger(debug Debugger) Option {
	return func(s *Service) {
		if debug != nil {
			s.debug = debug
		}
	}
}

// WithSingularPaths replaces the singular to collection path table.
func WithSingularPaths(paths map[string]string) Option {
	return func(s *Service) {
		s.singular = paths
	}
}

// WithExcludedPaths replaces the set of paths served without an envelope.
func WithExcludedPaths(paths map[string]bool) Option {
	return func(s *Service) {
		s.excluded = paths
	}
}

// SingularPaths maps each singular resource path to its collection path.
var SingularPaths = map[string]string{
	"/accessory/{guid}":      "/accessories",
	"/character/{guid}":      "/characters",
	"/chat/{guid}":           "/chats",
	"/company/{guid}":        "/companies",
	"/concept/{guid}":        "/concepts",
	"/dlc/{guid}":            "/dlcs",
	"/franchise/{guid}":      "/franchises",
	"/game/{guid}":           "/games",
	"/game_rating/{guid}":    "/game_ratings",
	"/genre/{guid}":          "/genres",
	"/location/{guid}":       "/locations",
	"/object/{guid}":         "/objects",
	"/person/{guid}":         "/people",
	"/platform/{guid}":       "/platforms",
	"/promo/{guid}":          "/promos",
	"/rating_board/{guid}":   "/rating_boards",
	"/region/{guid}":         "/regions",
	"/release/{guid}":        "/releases",
	"/review/{guid}":         "/reviews",
	"/theme/{guid}":          "/themes",
	"/user_review/{guid}":    "/user_reviews",
	"/video/{guid}":          "/videos",
	"/video_category/{guid}": "/video_categories",
	"/video_show/{guid}":     "/video_shows",
}

// ExcludedPaths are served without the standard envelope.
var ExcludedPaths = map[string]bool{
	"/video/current-live":     true,
	"/video/save-time":        true,
	"/video/get-saved-time":   true,
	"/video/saved-times":      true,
	"/video/clear-saved-time": true,
}
