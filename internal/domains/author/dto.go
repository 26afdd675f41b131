package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Surname,
			validation.Required.Error("surname is required"),
			validation.Length(1, MaxSurnameLength),
		),
	)
}

// UpdateAuthorRequest - PUT /authors
// Full-record update: every field is overwritten, no partial merge.
type UpdateAuthorRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.Required.Error("id is required"),
			validation.Min(int64(1)),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Surname,
			validation.Required.Error("surname is required"),
			validation.Length(1, MaxSurnameLength),
		),
	)
}

type AuthorResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:      a.ID,
		Name:    a.Name,
		Surname: a.Surname,
	}
}

func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:    r.Name,
		Surname: r.Surname,
	}
}

func (r *UpdateAuthorRequest) ToEntity() *Author {
	return &Author{
		ID:      r.ID,
		Name:    r.Name,
		Surname: r.Surname,
	}
}
