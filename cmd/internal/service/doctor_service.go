package service

import (
	"clinic/cmd/internal/domain/entity"
	"clinic/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

type DoctorRepository interface {
	FindByID(id int) (*entity.Doctor, error)
	FindAll() ([]*entity.Doctor, error)
}

type DoctorResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type DefaultDoctorService struct {
	DoctorRepo DoctorRepository
}

func NewDoctorService(doctorRepo DoctorRepository) *DefaultDoctorService {
	return &DefaultDoctorService{DoctorRepo: doctorRepo}
}

func (d *DefaultDoctorService) GetDoctors() ([]*DoctorResponse, apierror.ErrorResponse) {
	doctors, err := d.DoctorRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all doctors: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp[i] = toDoctorResponse(doctor)
	}
	return resp, nil
}

func toDoctorResponse(doctor *entity.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:        doctor.ID,
		FirstName: doctor.FirstName,
		LastName:  doctor.LastName,
	}
}
