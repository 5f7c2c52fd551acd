package converter

import (
	"clinic-appointments-api/internal/delivery/dto"
	"clinic-appointments-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Email:          patient.Email,
		DocumentNumber: patient.DocumentNumber,
		PhoneNumber:    patient.PhoneNumber,
		Active:         patient.Active,
	}
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		resp := PatientToResponse(&patients[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
