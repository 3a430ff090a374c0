package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// clientSelectableFields are the columns the external API may select
// clients by. Anything else is rejected before touching the database.
var clientSelectableFields = map[string]bool{
	"username": true,
	"discord":  true,
	"email":    true,
}

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo panel.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo panel.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, panelID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	client, err := panel.NewClient(panelID, req.Username)
	if err != nil {
		return nil, err
	}
	if req.Discord != "" || req.Email != "" || req.AvatarURL != "" {
		if err := client.Update(req.Username, req.Discord, req.Email, req.AvatarURL); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, panelID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, panelID, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, panelID uuid.UUID, filter ListFilter) ([]ClientResponse, int64, error) {
	clients, err := s.clientRepo.FindAll(ctx, panelID, filter.ToDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, panelID)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// SelectByField retrieves clients matching a single column value. Used by
// the external API; the field must be one of the selectable columns.
func (s *ClientService) SelectByField(ctx context.Context, panelID uuid.UUID, field, value string) ([]ClientResponse, error) {
	if !clientSelectableFields[field] {
		return nil, shared.NewDomainError("INVALID_FIELD", "Clients cannot be selected by this field")
	}

	clients, err := s.clientRepo.FindByField(ctx, panelID, field, value)
	if err != nil {
		return nil, err
	}

	return ToClientResponses(clients), nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, panelID, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, panelID, clientID)
	if err != nil {
		return nil, err
	}

	username := client.Username
	discord := client.Discord
	email := client.Email
	avatarURL := client.AvatarURL
	if req.Username != nil {
		username = *req.Username
	}
	if req.Discord != nil {
		discord = *req.Discord
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.AvatarURL != nil {
		avatarURL = *req.AvatarURL
	}
	if err := client.Update(username, discord, email, avatarURL); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete deletes a client. Commissions referencing it cascade at the
// schema level.
func (s *ClientService) Delete(ctx context.Context, panelID, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, panelID, clientID); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, panelID, clientID)
}
