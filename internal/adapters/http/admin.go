package httpadapter

import (
	"context"

	api "blacklist/internal/api"
)

func (s *Server) GetOverview(ctx context.Context, _ api.GetOverviewRequestObject) (api.GetOverviewResponseObject, error) {
	o, err := s.overview.Get(ctx, actorFrom(ctx))
	if err != nil {
		return nil, err
	}
	return api.GetOverview200JSONResponse{PendingCases: o.PendingCases, PendingUsers: o.PendingUsers, Companies: o.Companies}, nil
}

// ListUsers defaults to the pending queue when approved is absent.
func (s *Server) ListUsers(ctx context.Context, req api.ListUsersRequestObject) (api.ListUsersResponseObject, error) {
	us, err := s.users.List(ctx, actorFrom(ctx), deref(req.Params.Approved))
	if err != nil {
		return nil, err
	}
	out := make(api.ListUsers200JSONResponse, 0, len(us))
	for _, u := range us {
		out = append(out, toUser(u))
	}
	return out, nil
}

func (s *Server) ApproveUser(ctx context.Context, req api.ApproveUserRequestObject) (api.ApproveUserResponseObject, error) {
	if err := s.users.Approve(ctx, actorFrom(ctx), req.Id); err != nil {
		return nil, err
	}
	return api.ApproveUser204Response{}, nil
}

func (s *Server) ListCompanies(ctx context.Context, _ api.ListCompaniesRequestObject) (api.ListCompaniesResponseObject, error) {
	cs, err := s.companies.List(ctx, actorFrom(ctx))
	if err != nil {
		return nil, err
	}
	out := make(api.ListCompanies200JSONResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCompany(c))
	}
	return out, nil
}

func (s *Server) CreateCompany(ctx context.Context, req api.CreateCompanyRequestObject) (api.CreateCompanyResponseObject, error) {
	c, err := s.companies.Create(ctx, actorFrom(ctx), req.Body.Name, deref(req.Body.IsMain))
	if err != nil {
		return nil, err
	}
	return api.CreateCompany201JSONResponse(toCompany(c)), nil
}

func (s *Server) GetCompany(ctx context.Context, req api.GetCompanyRequestObject) (api.GetCompanyResponseObject, error) {
	c, err := s.companies.Get(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetCompany200JSONResponse(toCompany(c)), nil
}

// UpdateCompany replaces name and main flag; an absent is_main clears it.
func (s *Server) UpdateCompany(ctx context.Context, req api.UpdateCompanyRequestObject) (api.UpdateCompanyResponseObject, error) {
	c, err := s.companies.Update(ctx, actorFrom(ctx), req.Id.String(), req.Body.Name, deref(req.Body.IsMain))
	if err != nil {
		return nil, err
	}
	return api.UpdateCompany200JSONResponse(toCompany(c)), nil
}

func (s *Server) DeleteCompany(ctx context.Context, req api.DeleteCompanyRequestObject) (api.DeleteCompanyResponseObject, error) {
	if err := s.companies.Delete(ctx, actorFrom(ctx), req.Id.String()); err != nil {
		return nil, err
	}
	return api.DeleteCompany204Response{}, nil
}
