package http

import (
	"net/http"
)

func (s *Server) createDefect(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.createDefect"

	input, err := decodeBag(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	defect, err := s.defectService.Create(r.Context(), input)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, defect)
}

func (s *Server) listDefects(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listDefects"

	params, err := bindListDefectsParams(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	defects, err := s.defectService.List(r.Context(), params.filter())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, defects)
}

func (s *Server) getDefect(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getDefect"

	id, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	defect, err := s.defectService.Get(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, defect)
}

func (s *Server) updateDefect(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.updateDefect"

	id, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	patch, err := decodeBag(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	defect, err := s.defectService.Update(r.Context(), id, patch)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, defect)
}

func (s *Server) deleteDefect(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.deleteDefect"

	id, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.defectService.Delete(r.Context(), id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listStatusHistory(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listStatusHistory"

	id, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	changes, err := s.defectService.History(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, changes)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.createComment"

	defectID, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	input, err := decodeBag(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	comment, err := s.commentService.Create(r.Context(), defectID, input)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, comment)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listComments"

	defectID, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	comments, err := s.commentService.ListByDefect(r.Context(), defectID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, comments)
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.deleteComment"

	id, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.commentService.Delete(r.Context(), id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createAttachment(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.createAttachment"

	defectID, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	input, err := decodeBag(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	attachment, err := s.attachmentService.Create(r.Context(), defectID, input)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, attachment)
}

func (s *Server) listAttachments(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listAttachments"

	defectID, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	attachments, err := s.attachmentService.ListByDefect(r.Context(), defectID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, attachments)
}

func (s *Server) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.deleteAttachment"

	id, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.attachmentService.Delete(r.Context(), id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.createUser"

	input, err := decodeBag(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.Create(r.Context(), input)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, user)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listUsers"

	users, err := s.userService.List(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getUser"

	id, err := pathID(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.Get(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, user)
}
