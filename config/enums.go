package config

// Format of the resource table file.
// ENUM(xml, sqlite, aar, auto)
type ResourceFormat int

// Ext returns usual file name extension for the format. Auto has to be
// resolved to one of the real formats first.
func (f ResourceFormat) Ext() string {
	switch f {
	case ResourceFormatXml:
		return ".xml"
	case ResourceFormatSqlite:
		return ".sqlite"
	case ResourceFormatAar:
		return ".aar"
	default:
		// this should never happen
		panic("unsupported resource format requested")
	}
}
