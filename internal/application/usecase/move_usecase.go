package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MoveUseCase CRUD de operaciones de stock. La confirmación, la cancelación y
// el chequeo de disponibilidad viven en el motor (inventory.StockUseCase).
type MoveUseCase struct {
	snapRepo repository.SnapshotRepository
}

// NewMoveUseCase construye el caso de uso.
func NewMoveUseCase(snapRepo repository.SnapshotRepository) *MoveUseCase {
	return &MoveUseCase{snapRepo: snapRepo}
}

// List devuelve las operaciones, opcionalmente filtradas por tipo, estado y
// búsqueda por subcadena sobre referencia y contacto.
func (uc *MoveUseCase) List(ctx context.Context, moveType, status, query string) ([]dto.MoveResponse, error) {
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	today := time.Now().Format(entity.DateLayout)
	term := strings.ToLower(query)

	out := make([]dto.MoveResponse, 0, len(moves))
	for _, m := range moves {
		if moveType != "" && m.Type != moveType {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(m.Reference), term) &&
			!strings.Contains(strings.ToLower(m.Contact), term) {
			continue
		}
		out = append(out, ToMoveResponse(m, today))
	}
	return out, nil
}

// Get devuelve una operación por ID.
func (uc *MoveUseCase) Get(ctx context.Context, id string) (*dto.MoveResponse, error) {
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	m := findMoveByID(moves, id)
	if m == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToMoveResponse(m, time.Now().Format(entity.DateLayout))
	return &resp, nil
}

// Create da de alta una operación en Draft con referencia generada.
// Valida tipo, cantidades positivas, productos existentes y lote/serial
// obligatorio cuando el producto lo exige.
func (uc *MoveUseCase) Create(ctx context.Context, in dto.MoveRequest) (*dto.MoveResponse, error) {
	if err := validMoveType(in.Type); err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 || in.SourceLocation == "" || in.DestLocation == "" {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	lines, err := buildLines(products, in.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	move := &entity.StockMove{
		ID:             uuid.New().String(),
		Reference:      newReference(in.Type, now),
		Type:           in.Type,
		Status:         entity.StatusDraft,
		Contact:        in.Contact,
		ScheduleDate:   in.ScheduleDate,
		SourceLocation: in.SourceLocation,
		DestLocation:   in.DestLocation,
		Date:           now.Format(entity.DateLayout),
		Lines:          lines,
	}

	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	// Las operaciones nuevas se anteponen, como en el tablero.
	moves = append([]*entity.StockMove{move}, moves...)
	if err := uc.snapRepo.SaveMoves(moves); err != nil {
		return nil, err
	}
	resp := ToMoveResponse(move, now.Format(entity.DateLayout))
	return &resp, nil
}

// Update edita una operación abierta. Una operación confirmada es inmutable.
func (uc *MoveUseCase) Update(ctx context.Context, id string, in dto.MoveRequest) (*dto.MoveResponse, error) {
	if err := validMoveType(in.Type); err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 || in.SourceLocation == "" || in.DestLocation == "" {
		return nil, domain.ErrInvalidInput
	}
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	move := findMoveByID(moves, id)
	if move == nil {
		return nil, domain.ErrNotFound
	}
	if move.Status == entity.StatusDone {
		return nil, domain.ErrMoveDone
	}
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	lines, err := buildLines(products, in.Lines)
	if err != nil {
		return nil, err
	}

	move.Type = in.Type
	move.Contact = in.Contact
	move.ScheduleDate = in.ScheduleDate
	move.SourceLocation = in.SourceLocation
	move.DestLocation = in.DestLocation
	move.Lines = lines

	if err := uc.snapRepo.SaveMoves(moves); err != nil {
		return nil, err
	}
	resp := ToMoveResponse(move, time.Now().Format(entity.DateLayout))
	return &resp, nil
}

// Delete elimina una operación. Borrar un ID inexistente es un no-op.
func (uc *MoveUseCase) Delete(ctx context.Context, id string) error {
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return err
	}
	kept := moves[:0]
	for _, m := range moves {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return uc.snapRepo.SaveMoves(kept)
}

func validMoveType(t string) error {
	switch t {
	case entity.MoveTypeReceipt, entity.MoveTypeDelivery, entity.MoveTypeInternal, entity.MoveTypeAdjustment:
		return nil
	}
	return domain.ErrInvalidInput
}

// buildLines valida y materializa las líneas, copiando el nombre del producto
// al momento de la creación (no se sincroniza con renombres posteriores).
func buildLines(products []*entity.Product, in []dto.MoveLineRequest) ([]entity.StockMoveLine, error) {
	lines := make([]entity.StockMoveLine, 0, len(in))
	for _, l := range in {
		if l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product := findByID(products, l.ProductID)
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.RequiresLot() && l.LotNumber == "" {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.StockMoveLine{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    l.Quantity,
			LotNumber:   l.LotNumber,
		})
	}
	return lines, nil
}

func newReference(moveType string, now time.Time) string {
	prefix := "WH/INT"
	switch moveType {
	case entity.MoveTypeReceipt:
		prefix = "WH/IN"
	case entity.MoveTypeDelivery:
		prefix = "WH/OUT"
	case entity.MoveTypeAdjustment:
		prefix = "INV/ADJ"
	}
	return fmt.Sprintf("%s/%04d", prefix, now.Unix()%10000)
}

func findMoveByID(moves []*entity.StockMove, id string) *entity.StockMove {
	for _, m := range moves {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// ToMoveResponse proyecta una operación calculando el atraso contra la fecha
// dada (hoy, en formato ISO).
func ToMoveResponse(m *entity.StockMove, today string) dto.MoveResponse {
	lines := make([]dto.MoveLineResponse, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, dto.MoveLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			LotNumber:   l.LotNumber,
		})
	}
	return dto.MoveResponse{
		ID:             m.ID,
		Reference:      m.Reference,
		Type:           m.Type,
		Status:         m.Status,
		Contact:        m.Contact,
		ScheduleDate:   m.ScheduleDate,
		SourceLocation: m.SourceLocation,
		DestLocation:   m.DestLocation,
		Date:           m.Date,
		Late:           m.IsLate(today),
		Lines:          lines,
	}
}
