package models

// LogFilter represents paging parameters for the audit log listings
type LogFilter struct {
	Outcome string `form:"outcome"` // ok, timeout, failed, malformed (generations only)
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

// Normalize clamps paging values to sane bounds
func (f *LogFilter) Normalize() {
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 500 {
		f.Limit = 500
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
