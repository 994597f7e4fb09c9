package pieces

// Config describes the local asset tree and how it maps to object keys.
type Config struct {
	// Root is the asset root, laid out as <root>/<set>/<color>/<piece-file>.
	Root string `mapstructure:"root" default:"/assets/chess_pieces" env:"ASSETS_DIR"`
	// Prefix is the first segment of every object key.
	Prefix string `mapstructure:"prefix" default:"chess_piece"`
	// Colors lists the recognized color directories, in traversal order.
	Colors []string `mapstructure:"colors" default:"b,w"`
	// Extensions lists the image extensions to upload (matched case-insensitively).
	Extensions []string `mapstructure:"extensions" default:".png"`
}

func (c Config) withDefaults() Config {
	if c.Prefix == "" {
		c.Prefix = "chess_piece"
	}
	if len(c.Colors) == 0 {
		c.Colors = []string{"b", "w"}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".png"}
	}
	return c
}
