package usecases

import "context"

// Provisioner exposes job card derivation to the ticket status flow.
type Provisioner struct {
	ensure *EnsureForTicketUseCase
	tokens *EnsurePublicTokenUseCase
}

func NewProvisioner(ensure *EnsureForTicketUseCase, tokens *EnsurePublicTokenUseCase) *Provisioner {
	return &Provisioner{ensure: ensure, tokens: tokens}
}

func (p *Provisioner) EnsureForTicket(ctx context.Context, ticketID uint, copyMedia bool) (uint, error) {
	result, err := p.ensure.Execute(ctx, EnsureForTicketCommand{TicketID: ticketID, CopyMedia: copyMedia})
	if err != nil {
		return 0, err
	}
	return result.JobCardID, nil
}

func (p *Provisioner) EnsurePublicToken(ctx context.Context, jobCardID uint) (string, error) {
	return p.tokens.Execute(ctx, jobCardID)
}
