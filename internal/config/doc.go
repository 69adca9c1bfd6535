// Package config defines the configuration document of baseproject and the
// typed read and seeding paths over it.
//
// # Document
//
// The document is a single JSON object stored as baseproject.config in the
// per-user configuration directory (see DocumentPath). It has exactly three
// sections:
//
//	{
//	  "project_config": { "name": "", "filepath": "", "remarks": "" },
//	  "window_config": { "title": "BaseProject", "min_width": 800, "min_height": 600,
//	                     "max_width": 1920, "max_height": 1080 },
//	  "window_state": { "width": 1200, "height": 800, "x": 100, "y": 100,
//	                    "fullscreen": false, "theme": "auto",
//	                    "main_panel_layout": { "horizontal": [15, 70, 15], "vertical": [85, 15] } }
//	}
//
// # Seeding
//
// Initialize fills in absent sections with their defaults and saves once.
// Sections that already exist are never rewritten, even if the defaults
// change later.
//
// # Typed reads
//
// LoadSection converts a stored section into its Go type under a Policy:
//
//   - Strict: an absent section is a SectionMissingError, a malformed one a
//     DeserializationError.
//   - Lenient: both cases yield the schema default and a fallback Event.
//
// A section is malformed when any field is missing, has the wrong JSON type,
// or an array has the wrong length. Extra fields are ignored.
//
// Storage itself lives in internal/store; this package only depends on the
// Source and Seeder interfaces.
package config
