package pagination

// Params embeds into Huma input structs for offset-based pagination.
type Params struct {
	Limit  int `query:"limit"  doc:"Maximum items per page"          default:"20" minimum:"1" maximum:"100"`
	Offset int `query:"offset" doc:"Number of items to skip"         default:"0"  minimum:"0"`
}

// DefaultLimit returns the limit, defaulting to 20 if zero.
func (p Params) DefaultLimit() int {
	if p.Limit <= 0 {
		return 20
	}
	return p.Limit
}

// DefaultOffset returns the offset, clamped at zero.
func (p Params) DefaultOffset() int {
	if p.Offset < 0 {
		return 0
	}
	return p.Offset
}
