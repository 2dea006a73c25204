package mappers

import (
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/infrastructure/persistence/models"
)

// InquiryMapper handles the conversion between inquiry domain entities and
// persistence models.
type InquiryMapper interface {
	ToModel(inq *inquiry.Inquiry) *models.InquiryModel
	ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error)

	AssignmentToModel(a *inquiry.Assignment) *models.InquiryAssignmentModel
	AssignmentToDomain(model *models.InquiryAssignmentModel) (*inquiry.Assignment, error)

	OwnerMessageToModel(m *inquiry.OwnerMessage) *models.OwnerMessageModel
	OwnerMessageToDomain(model *models.OwnerMessageModel) (*inquiry.OwnerMessage, error)

	AssignmentMessageToModel(m *inquiry.AssignmentMessage) *models.AssignmentMessageModel
	AssignmentMessageToDomain(model *models.AssignmentMessageModel) (*inquiry.AssignmentMessage, error)

	CategoryToModel(c *inquiry.Category) *models.InquiryCategoryModel
	CategoryToDomain(model *models.InquiryCategoryModel) (*inquiry.Category, error)

	DisplayNameToModel(d *inquiry.CategoryDisplayName) *models.InquiryCategoryDisplayNameModel
	DisplayNameToDomain(model *models.InquiryCategoryDisplayNameModel) (*inquiry.CategoryDisplayName, error)
}

type InquiryMapperImpl struct{}

func NewInquiryMapper() InquiryMapper {
	return &InquiryMapperImpl{}
}

func (m *InquiryMapperImpl) ToModel(inq *inquiry.Inquiry) *models.InquiryModel {
	return &models.InquiryModel{
		ID:         inq.ID(),
		SID:        inq.SID(),
		CategoryID: inq.CategoryID(),
		Title:      inq.Title(),
		OwnerID:    inq.OwnerID(),
		Solved:     inq.Solved(),
		LastReadAt: inq.LastReadAt().UnixMilli(),
		CreatedAt:  inq.CreatedAt().UnixMilli(),
		UpdatedAt:  inq.UpdatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error) {
	return inquiry.ReconstructInquiry(
		model.ID,
		model.SID,
		model.CategoryID,
		model.Title,
		model.OwnerID,
		model.Solved,
		inquiryConvertMillisToTime(model.LastReadAt),
		inquiryConvertMillisToTime(model.CreatedAt),
		inquiryConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *InquiryMapperImpl) AssignmentToModel(a *inquiry.Assignment) *models.InquiryAssignmentModel {
	return &models.InquiryAssignmentModel{
		ID:          a.ID(),
		InquiryID:   a.InquiryID(),
		ModeratorID: a.ModeratorID(),
		InCharge:    a.InCharge(),
		LastReadAt:  a.LastReadAt().UnixMilli(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) AssignmentToDomain(model *models.InquiryAssignmentModel) (*inquiry.Assignment, error) {
	return inquiry.ReconstructAssignment(
		model.ID,
		model.InquiryID,
		model.ModeratorID,
		model.InCharge,
		inquiryConvertMillisToTime(model.LastReadAt),
		inquiryConvertMillisToTime(model.CreatedAt),
	)
}

func (m *InquiryMapperImpl) OwnerMessageToModel(msg *inquiry.OwnerMessage) *models.OwnerMessageModel {
	return &models.OwnerMessageModel{
		ID:        msg.ID(),
		InquiryID: msg.InquiryID(),
		Body:      msg.Body(),
		CreatedAt: msg.CreatedAt().UnixMilli(),
		UpdatedAt: msg.UpdatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) OwnerMessageToDomain(model *models.OwnerMessageModel) (*inquiry.OwnerMessage, error) {
	return inquiry.ReconstructOwnerMessage(
		model.ID,
		model.InquiryID,
		model.Body,
		inquiryConvertMillisToTime(model.CreatedAt),
		inquiryConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *InquiryMapperImpl) AssignmentMessageToModel(msg *inquiry.AssignmentMessage) *models.AssignmentMessageModel {
	return &models.AssignmentMessageModel{
		ID:           msg.ID(),
		AssignmentID: msg.AssignmentID(),
		ModeratorID:  msg.ModeratorID(),
		Body:         msg.Body(),
		CreatedAt:    msg.CreatedAt().UnixMilli(),
		UpdatedAt:    msg.UpdatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) AssignmentMessageToDomain(model *models.AssignmentMessageModel) (*inquiry.AssignmentMessage, error) {
	return inquiry.ReconstructAssignmentMessage(
		model.ID,
		model.AssignmentID,
		model.ModeratorID,
		model.Body,
		inquiryConvertMillisToTime(model.CreatedAt),
		inquiryConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *InquiryMapperImpl) CategoryToModel(c *inquiry.Category) *models.InquiryCategoryModel {
	return &models.InquiryCategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (m *InquiryMapperImpl) CategoryToDomain(model *models.InquiryCategoryModel) (*inquiry.Category, error) {
	return inquiry.ReconstructCategory(model.ID, model.Name, model.Description)
}

func (m *InquiryMapperImpl) DisplayNameToModel(d *inquiry.CategoryDisplayName) *models.InquiryCategoryDisplayNameModel {
	return &models.InquiryCategoryDisplayNameModel{
		ID:         d.ID(),
		CategoryID: d.CategoryID(),
		Language:   d.Language(),
		Name:       d.Name(),
	}
}

func (m *InquiryMapperImpl) DisplayNameToDomain(model *models.InquiryCategoryDisplayNameModel) (*inquiry.CategoryDisplayName, error) {
	return inquiry.ReconstructCategoryDisplayName(model.ID, model.CategoryID, model.Language, model.Name)
}

func inquiryConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
