package response

import (
	"nagoyameshi/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Kana        string `json:"kana"`
	Email       string `json:"email"`
	PostalCode  string `json:"postal_code"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Birthday    string `json:"birthday" copier:"-"`
	Occupation  string `json:"occupation"`
	CreatedAt   int64  `json:"created_at" copier:"-"`
}

func FromUserView(v *queries.UserView) (*ProfileResponse, error) {
	res := &ProfileResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	// same yyyymmdd form members submit
	if v.Birthday != nil {
		res.Birthday = v.Birthday.Format("20060102")
	}
	res.CreatedAt = v.CreatedAt.Unix()
	return res, nil
}

type CompanyResponse struct {
	Name              string `json:"name"`
	PostalCode        string `json:"postal_code"`
	Address           string `json:"address"`
	Representative    string `json:"representative"`
	EstablishmentDate string `json:"establishment_date"`
	Capital           string `json:"capital"`
	Business          string `json:"business"`
	NumberOfEmployees string `json:"number_of_employees"`
}

func FromCompanyView(v *queries.CompanyView) (*CompanyResponse, error) {
	res := &CompanyResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}
