package api

type Brewery struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"                  validate:"required,notblank,min=2,max=100"`
	Address     string `json:"address,omitempty"     validate:"max=255"`
	City        string `json:"city,omitempty"        validate:"max=100"`
	Country     string `json:"country,omitempty"     validate:"max=100"`
	Phone       string `json:"phone,omitempty"       validate:"phone"`
	Website     string `json:"website,omitempty"     validate:"omitempty,url"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

func (b *Brewery) Validate() error {
	return validationError(validate.Struct(b), nil)
}
