package services

// CreateItemInput carries raw create fields; the domain trims and validates them.
type CreateItemInput struct {
	Name        string
	Category    string
	Color       string
	Brand       *string
	Description *string
}

// Nullable distinguishes an absent optional field from one explicitly set to
// null. Set=false leaves the field untouched; Set=true with a nil Value clears it.
type Nullable struct {
	Set   bool
	Value *string
}

// SetTo returns a Nullable that replaces the field with s.
func SetTo(s string) Nullable { return Nullable{Set: true, Value: &s} }

// SetNull returns a Nullable that clears the field.
func SetNull() Nullable { return Nullable{Set: true} }

// UpdateItemInput is a partial update. Nil required fields and unset
// Nullables are left as they are.
type UpdateItemInput struct {
	ID          int64
	Name        *string
	Category    *string
	Color       *string
	Brand       Nullable
	Description Nullable
}

// Empty reports whether the input changes nothing.
func (in UpdateItemInput) Empty() bool {
	return in.Name == nil && in.Category == nil && in.Color == nil && !in.Brand.Set && !in.Description.Set
}
