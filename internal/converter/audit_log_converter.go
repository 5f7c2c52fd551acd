package converter

import (
	"clinic-appointments-api/internal/delivery/dto"
	"clinic-appointments-api/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its response DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}

	if log.User != nil {
		response.User = &dto.UserResponse{
			ID:        log.User.ID,
			Email:     log.User.Email,
			FullName:  log.User.FullName,
			Role:      log.User.Role,
			CreatedAt: log.User.CreatedAt,
			UpdatedAt: log.User.UpdatedAt,
		}
	}

	return response
}

// AuditLogsToResponses converts a slice of AuditLog entities
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		resp := AuditLogToResponse(&logs[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
