package api

// Beer is the wire shape of a beer. Optional fields are pointers: nil means the
// field was not provided. ID and the nested references are response-only.
type Beer struct {
	ID          uint     `json:"id"`
	Name        *string  `json:"name"                  validate:"omitempty,notblank,min=3,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	ABV         *float64 `json:"abv,omitempty"         validate:"omitempty,gte=0,lte=100"`
	IBU         *float64 `json:"ibu,omitempty"         validate:"omitempty,gte=0,lte=1000"`
	BreweryID   *uint    `json:"breweryId,omitempty"`
	StyleID     *uint    `json:"styleId,omitempty"`
	CategoryID  *uint    `json:"categoryId,omitempty"`

	Brewery  *Brewery  `json:"brewery,omitempty"  validate:"-"`
	Style    *Style    `json:"style,omitempty"    validate:"-"`
	Category *Category `json:"category,omitempty" validate:"-"`
}

// Validate checks a complete beer, as sent to create or replace.
func (b *Beer) Validate() error {
	var fields []FieldError

	if b.Name == nil {
		fields = append(fields, FieldError{Field: "name", Rule: "required", Message: "name is required"})
	}

	return validationError(validate.Struct(b), fields)
}

// ValidatePatch checks only the fields present in a partial update.
func (b *Beer) ValidatePatch() error {
	return validationError(validate.Struct(b), nil)
}
