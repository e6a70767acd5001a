package release

import "depot/internal/entities"

func ToDomain(r *ReleaseDB) *entities.Release {
	if r == nil {
		return nil
	}
	return &entities.Release{
		ID:              r.ID,
		ContainerNumber: r.ContainerNumber,
		ReleaseNumber:   r.ReleaseNumber,
		PickupDate:      r.PickupDate.UTC(),
		CustomerName:    r.CustomerName,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromDomainModify(r *entities.ReleaseModify) *ReleaseModifyDB {
	if r == nil {
		return nil
	}
	return &ReleaseModifyDB{
		ID:              r.ID,
		ContainerNumber: r.ContainerNumber,
		ReleaseNumber:   r.ReleaseNumber,
		PickupDate:      r.PickupDate,
		CustomerName:    r.CustomerName,
		Notes:           r.Notes,
	}
}
