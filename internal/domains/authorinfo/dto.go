package authorinfo

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorInfoRequest - POST /author-infos
type CreateAuthorInfoRequest struct {
	Role string  `json:"role"`
	Bio  *string `json:"bio,omitempty"`
}

func (r CreateAuthorInfoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.Length(1, MaxRoleLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
	)
}

// UpdateAuthorInfoRequest - PUT /author-infos
type UpdateAuthorInfoRequest struct {
	ID   int64   `json:"id"`
	Role string  `json:"role"`
	Bio  *string `json:"bio,omitempty"`
}

func (r UpdateAuthorInfoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.Required.Error("id is required"),
			validation.Min(int64(1)),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.Length(1, MaxRoleLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
	)
}

type AuthorInfoResponse struct {
	ID   int64   `json:"id"`
	Role string  `json:"role"`
	Bio  *string `json:"bio,omitempty"`
}

func (i AuthorInfo) ToResponse() *AuthorInfoResponse {
	return &AuthorInfoResponse{
		ID:   i.ID,
		Role: i.Role,
		Bio:  i.Bio,
	}
}

func (r *CreateAuthorInfoRequest) ToEntity() *AuthorInfo {
	return &AuthorInfo{
		Role: r.Role,
		Bio:  r.Bio,
	}
}

func (r *UpdateAuthorInfoRequest) ToEntity() *AuthorInfo {
	return &AuthorInfo{
		ID:   r.ID,
		Role: r.Role,
		Bio:  r.Bio,
	}
}
