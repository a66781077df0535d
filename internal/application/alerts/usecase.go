package alerts

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// AlertUseCase ciclo de vida de alertas de stock: alta manual, listado,
// asignación y resolución.
type AlertUseCase struct {
	repo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// Create alta manual de una alerta (POST /alertas-stock).
func (uc *AlertUseCase) Create(in dto.CreateAlertaRequest) (*entity.StockAlert, error) {
	status := in.EstadoAlerta
	if status == "" {
		status = entity.AlertActive
	}
	alert := &entity.StockAlert{
		ID:             uuid.New().String(),
		Type:           in.TipoAlerta,
		Message:        in.Mensaje,
		SupplyID:       in.IDInsumo,
		WarehouseID:    in.IDDeposito,
		AssignedUserID: in.IDUsuarioAsignado,
		Status:         status,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// GetByID devuelve una alerta por ID.
func (uc *AlertUseCase) GetByID(id string) (*entity.StockAlert, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	return alert, nil
}

// List lista alertas con filtros y paginación; devuelve el total.
func (uc *AlertUseCase) List(filter repository.AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error) {
	return uc.repo.List(filter, limit, offset)
}

// Update actualiza estado, asignación y/o fecha de resolución. Al pasar a
// RESUELTA sin fecha_resolucion explícita, se estampa la hora actual.
func (uc *AlertUseCase) Update(id string, in dto.UpdateAlertaRequest) (*entity.StockAlert, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if in.EstadoAlerta != nil {
		alert.Status = *in.EstadoAlerta
	}
	if in.IDUsuarioAsignado != nil {
		alert.AssignedUserID = in.IDUsuarioAsignado
	}
	if in.FechaResolucion != nil {
		alert.ResolvedAt = in.FechaResolucion
	}
	if alert.Status == entity.AlertResolved && alert.ResolvedAt == nil {
		now := time.Now()
		alert.ResolvedAt = &now
	}
	if err := uc.repo.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// Delete elimina una alerta por ID.
func (uc *AlertUseCase) Delete(id string) error {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
