// Package config loads the commentbox configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/commentbox/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Fields that are missing or blank keep their defaults
//  5. COMMENTBOX_API_URL, when set, replaces api_url
//
// # TOML Format
//
//	api_url = "https://commentary.example.com"
//	request_timeout = "90s"   # empty: no client-side timeout
//	rate_limit = 6            # analyze calls per minute, 0 = unlimited
//	validate_urls = false     # reject non-absolute URLs before sending
//	share_command = "wl-copy" # receives the commentary on stdin; {title} is substituted
//	log_file = "~/.local/state/commentbox/commentbox.log"  # "-" disables
//	log_level = "info"
//
// All fields are optional. Tilde expansion is performed on log_file.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors and values
// that cannot be interpreted (bad durations, negative limits). A missing
// file is NOT an error.
package config
