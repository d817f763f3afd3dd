package httpadapter

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	api "blacklist/internal/api"
	"blacklist/internal/domain"
)

func (s *Server) PostSignup(ctx context.Context, req api.PostSignupRequestObject) (api.PostSignupResponseObject, error) {
	u, err := s.users.Register(ctx, actorFrom(ctx).UserID, req.Body.DisplayName, req.Body.CompanyName)
	if err != nil {
		return nil, err
	}
	return api.PostSignup201JSONResponse(toUser(u)), nil
}

// GetMe reports the resolved actor. An identity that has not signed up yet
// gets Registered=false rather than a 404 so clients can route to sign-up.
func (s *Server) GetMe(ctx context.Context, _ api.GetMeRequestObject) (api.GetMeResponseObject, error) {
	actor := actorFrom(ctx)
	resp := api.Me{UserId: actor.UserID, Admin: actor.Admin, Approved: actor.Approved}
	if actor.CompanyID != "" {
		resp.CompanyId = &actor.CompanyID
	}
	u, err := s.users.Get(ctx, actor.UserID)
	switch {
	case err == nil:
		au := toUser(u)
		resp.User = &au
		resp.Registered = true
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}
	return api.GetMe200JSONResponse(resp), nil
}

func (s *Server) PostRiskPreview(ctx context.Context, req api.PostRiskPreviewRequestObject) (api.PostRiskPreviewResponseObject, error) {
	return api.PostRiskPreview200JSONResponse(toAssessment(s.cases.Preview(req.Body.Text))), nil
}

// PostOcr accepts either a multipart upload (field "image") or a raw image
// body.
func (s *Server) PostOcr(ctx context.Context, req api.PostOcrRequestObject) (api.PostOcrResponseObject, error) {
	image, contentType, err := readImage(req)
	if err != nil {
		return nil, err
	}
	out, err := s.cases.ExtractNarrative(ctx, image, contentType)
	if err != nil {
		return nil, err
	}
	return api.PostOcr200JSONResponse{Text: out.Text, Extracted: out.Extracted, Assessment: toAssessment(out.Assessment)}, nil
}

func readImage(req api.PostOcrRequestObject) ([]byte, string, error) {
	if req.MultipartBody == nil {
		if req.Body == nil {
			return nil, "", domain.NewValidationError("image", "is required")
		}
		mediaType, _, _ := mime.ParseMediaType(req.ContentType)
		b, err := io.ReadAll(req.Body)
		return b, mediaType, imageError(err)
	}
	for {
		part, err := req.MultipartBody.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, "", domain.NewValidationError("image", "is required")
		}
		if err != nil {
			return nil, "", imageError(err)
		}
		if part.FormName() != "image" {
			continue
		}
		b, err := io.ReadAll(part)
		return b, part.Header.Get("Content-Type"), imageError(err)
	}
}

// imageError keeps size violations distinct so they map to 413.
func imageError(err error) error {
	var tooLarge *http.MaxBytesError
	if err == nil || errors.As(err, &tooLarge) {
		return err
	}
	return domain.NewValidationError("image", "could not be read")
}

func (s *Server) ListCases(ctx context.Context, req api.ListCasesRequestObject) (api.ListCasesResponseObject, error) {
	status, err := statusFilter(req.Params.Status)
	if err != nil {
		return nil, err
	}
	cs, err := s.cases.List(ctx, actorFrom(ctx), status)
	if err != nil {
		return nil, err
	}
	return api.ListCases200JSONResponse(s.toCases(cs)), nil
}

func (s *Server) SubmitCase(ctx context.Context, req api.SubmitCaseRequestObject) (api.SubmitCaseResponseObject, error) {
	c, err := s.cases.Submit(ctx, actorFrom(ctx), caseInput(*req.Body))
	if err != nil {
		return nil, err
	}
	return api.SubmitCase201JSONResponse(s.toCase(c)), nil
}

func (s *Server) GetCase(ctx context.Context, req api.GetCaseRequestObject) (api.GetCaseResponseObject, error) {
	c, err := s.cases.Get(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetCase200JSONResponse(s.toCase(c)), nil
}

func (s *Server) EditCase(ctx context.Context, req api.EditCaseRequestObject) (api.EditCaseResponseObject, error) {
	edit, err := caseEdit(*req.Body)
	if err != nil {
		return nil, err
	}
	c, err := s.cases.Edit(ctx, actorFrom(ctx), req.Id.String(), edit)
	if err != nil {
		return nil, err
	}
	return api.EditCase200JSONResponse(s.toCase(c)), nil
}

func (s *Server) DeleteCase(ctx context.Context, req api.DeleteCaseRequestObject) (api.DeleteCaseResponseObject, error) {
	if err := s.cases.Delete(ctx, actorFrom(ctx), req.Id.String()); err != nil {
		return nil, err
	}
	return api.DeleteCase204Response{}, nil
}

func (s *Server) ApproveCase(ctx context.Context, req api.ApproveCaseRequestObject) (api.ApproveCaseResponseObject, error) {
	c, err := s.cases.Approve(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.ApproveCase200JSONResponse(s.toCase(c)), nil
}

func (s *Server) RejectCase(ctx context.Context, req api.RejectCaseRequestObject) (api.RejectCaseResponseObject, error) {
	c, err := s.cases.Reject(ctx, actorFrom(ctx), req.Id.String(), req.Body.Reason)
	if err != nil {
		return nil, err
	}
	return api.RejectCase200JSONResponse(s.toCase(c)), nil
}

func (s *Server) SearchCases(ctx context.Context, req api.SearchCasesRequestObject) (api.SearchCasesResponseObject, error) {
	name := strings.TrimSpace(deref(req.Params.Name))
	cs, err := s.cases.Search(ctx, actorFrom(ctx), name, fromDate(req.Params.BirthDate))
	if err != nil {
		return nil, err
	}
	return api.SearchCases200JSONResponse(s.toCases(cs)), nil
}
