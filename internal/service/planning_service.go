package service

import (
	"context"
	"fmt"
	"time"

	"github.com/madouyatt95/laserpark/internal/apperrors"
	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
)

type PlanningService interface {
	CreateMember(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	UpdateMember(ctx context.Context, actor Actor, memberID uuid.UUID, req dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	ToggleMember(ctx context.Context, actor Actor, memberID uuid.UUID) (*dto.TeamMemberResponse, error)
	ListMembers(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]dto.TeamMemberResponse, error)

	CreateShift(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	UpdateShift(ctx context.Context, actor Actor, shiftID uuid.UUID, req dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	DeleteShift(ctx context.Context, actor Actor, shiftID uuid.UUID) error
	ListShifts(ctx context.Context, parkID uuid.UUID, filter dto.ShiftFilter) ([]dto.ShiftResponse, error)
}

type planningService struct {
	planning repository.PlanningRepository
	audit    AuditService
	loc      *time.Location
}

func NewPlanningService(planning repository.PlanningRepository, audit AuditService, loc *time.Location) PlanningService {
	return &planningService{planning: planning, audit: audit, loc: loc}
}

func (s *planningService) CreateMember(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member := &model.TeamMember{
		ParkID:   parkID,
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := s.planning.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "team_member",
		EntityID:    member.ID.String(),
		Description: fmt.Sprintf("Membre ajouté à l'équipe : %s", member.Name),
	})
	return memberToResponse(member), nil
}

func (s *planningService) UpdateMember(ctx context.Context, actor Actor, memberID uuid.UUID, req dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := s.planning.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Phone != nil {
		member.Phone = req.Phone
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if err := s.planning.UpdateMember(ctx, member); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      member.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "update",
		EntityType:  "team_member",
		EntityID:    member.ID.String(),
		Description: fmt.Sprintf("Membre modifié : %s", member.Name),
	})
	return memberToResponse(member), nil
}

// ToggleMember flips the active flag. A deactivated member keeps all past
// shifts but no longer appears in the roster picker.
func (s *planningService) ToggleMember(ctx context.Context, actor Actor, memberID uuid.UUID) (*dto.TeamMemberResponse, error) {
	member, err := s.planning.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	member.IsActive = !member.IsActive
	if err := s.planning.UpdateMember(ctx, member); err != nil {
		return nil, err
	}

	action := "Membre désactivé"
	if member.IsActive {
		action = "Membre réactivé"
	}
	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      member.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "update",
		EntityType:  "team_member",
		EntityID:    member.ID.String(),
		Description: fmt.Sprintf("%s : %s", action, member.Name),
	})
	return memberToResponse(member), nil
}

func (s *planningService) ListMembers(ctx context.Context, parkID uuid.UUID, includeInactive bool) ([]dto.TeamMemberResponse, error) {
	members, err := s.planning.ListMembersByPark(ctx, parkID, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *memberToResponse(&members[i]))
	}
	return out, nil
}

func (s *planningService) CreateShift(ctx context.Context, actor Actor, parkID uuid.UUID, req dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("%w: member_id invalide", apperrors.ErrValidation)
	}
	member, err := s.rosterMember(ctx, parkID, memberID)
	if err != nil {
		return nil, err
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date invalide, format attendu YYYY-MM-DD", apperrors.ErrValidation)
	}
	if err := checkShiftTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	shift := &model.Shift{
		ParkID:    parkID,
		MemberID:  memberID,
		ShiftDate: date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	}
	if err := s.planning.CreateShift(ctx, shift); err != nil {
		return nil, err
	}
	shift.Member = member

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      parkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "create",
		EntityType:  "shift",
		EntityID:    shift.ID.String(),
		Description: fmt.Sprintf("Créneau planifié : %s le %s (%s-%s)", member.Name, req.Date, req.StartTime, req.EndTime),
	})
	return shiftToResponse(shift), nil
}

func (s *planningService) UpdateShift(ctx context.Context, actor Actor, shiftID uuid.UUID, req dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.planning.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	if req.MemberID != nil {
		memberID, err := uuid.Parse(*req.MemberID)
		if err != nil {
			return nil, fmt.Errorf("%w: member_id invalide", apperrors.ErrValidation)
		}
		member, err := s.rosterMember(ctx, shift.ParkID, memberID)
		if err != nil {
			return nil, err
		}
		shift.MemberID = memberID
		shift.Member = member
	}
	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date invalide, format attendu YYYY-MM-DD", apperrors.ErrValidation)
		}
		shift.ShiftDate = date
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.Notes != nil {
		shift.Notes = req.Notes
	}
	if err := checkShiftTimes(shift.StartTime, shift.EndTime); err != nil {
		return nil, err
	}

	if err := s.planning.UpdateShift(ctx, shift); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      shift.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "update",
		EntityType:  "shift",
		EntityID:    shift.ID.String(),
		Description: fmt.Sprintf("Créneau modifié : %s (%s-%s)", shift.ShiftDate.Format("2006-01-02"), shift.StartTime, shift.EndTime),
	})
	return shiftToResponse(shift), nil
}

func (s *planningService) DeleteShift(ctx context.Context, actor Actor, shiftID uuid.UUID) error {
	shift, err := s.planning.FindShiftByID(ctx, shiftID)
	if err != nil {
		return err
	}
	if err := s.planning.DeleteShift(ctx, shiftID); err != nil {
		return err
	}

	s.audit.Record(ctx, dto.AuditEntry{
		ParkID:      shift.ParkID.String(),
		UserID:      actor.ID.String(),
		UserName:    actor.FullName,
		Action:      "delete",
		EntityType:  "shift",
		EntityID:    shiftID.String(),
		Description: fmt.Sprintf("Créneau supprimé : %s (%s-%s)", shift.ShiftDate.Format("2006-01-02"), shift.StartTime, shift.EndTime),
	})
	return nil
}

func (s *planningService) ListShifts(ctx context.Context, parkID uuid.UUID, filter dto.ShiftFilter) ([]dto.ShiftResponse, error) {
	if filter.MemberID != "" {
		memberID, err := uuid.Parse(filter.MemberID)
		if err != nil {
			return nil, fmt.Errorf("%w: member_id invalide", apperrors.ErrValidation)
		}
		shifts, err := s.planning.ListShiftsByMember(ctx, memberID)
		if err != nil {
			return nil, err
		}
		return shiftsToResponses(shifts), nil
	}

	var from, to time.Time
	switch {
	case filter.Date != "":
		day, err := time.ParseInLocation("2006-01-02", filter.Date, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date invalide, format attendu YYYY-MM-DD", apperrors.ErrValidation)
		}
		from, to = day, day
	case filter.WeekStart != "":
		start, err := time.ParseInLocation("2006-01-02", filter.WeekStart, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: week_start invalide, format attendu YYYY-MM-DD", apperrors.ErrValidation)
		}
		from, to = start, start.AddDate(0, 0, 6)
	default:
		today := time.Now().In(s.loc)
		from = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc)
		to = from
	}

	shifts, err := s.planning.ListShifts(ctx, parkID, from, to)
	if err != nil {
		return nil, err
	}
	return shiftsToResponses(shifts), nil
}

// rosterMember loads a member and checks it can be scheduled for the park.
func (s *planningService) rosterMember(ctx context.Context, parkID, memberID uuid.UUID) (*model.TeamMember, error) {
	member, err := s.planning.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.ParkID != parkID {
		return nil, fmt.Errorf("%w: membre d'un autre parc", apperrors.ErrValidation)
	}
	if !member.IsActive {
		return nil, fmt.Errorf("%w: membre désactivé", apperrors.ErrValidation)
	}
	return member, nil
}

// checkShiftTimes rejects inverted slots. Zero-padded HH:MM compares
// correctly as strings.
func checkShiftTimes(start, end string) error {
	if end <= start {
		return fmt.Errorf("%w: l'heure de fin doit être après l'heure de début", apperrors.ErrValidation)
	}
	return nil
}

func memberToResponse(m *model.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		ID:       m.ID.String(),
		ParkID:   m.ParkID.String(),
		Name:     m.Name,
		Role:     m.Role,
		Phone:    m.Phone,
		IsActive: m.IsActive,
	}
}

func shiftToResponse(s *model.Shift) *dto.ShiftResponse {
	resp := &dto.ShiftResponse{
		ID:        s.ID.String(),
		ParkID:    s.ParkID.String(),
		MemberID:  s.MemberID.String(),
		Date:      s.ShiftDate.Format("2006-01-02"),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Notes:     s.Notes,
	}
	if s.Member != nil {
		resp.MemberName = s.Member.Name
	}
	return resp
}

func shiftsToResponses(shifts []model.Shift) []dto.ShiftResponse {
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, *shiftToResponse(&shifts[i]))
	}
	return out
}
