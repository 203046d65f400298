package resources

// Kind of a resource table entry.
// ENUM(id, dimen)
type Kind int
