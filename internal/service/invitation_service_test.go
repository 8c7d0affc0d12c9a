package service

import (
	"testing"

	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/model"
)

func TestSendInviteCreatesInterviewAndAdvancesApplication(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, testRecruiterID)
	application := env.seedApplication(t, job.ID, testCandidateID, model.ApplicationStatusReviewed)
	template := env.seedTemplate(t, testRecruiterID, job.ID, 3)

	header, err := env.invitations.SendInvite(testRecruiterID, dto.InviteCreateDTO{
		ApplicationID: application.ID,
		TemplateID:    template.ID,
		Message:       "Looking forward to your answers.",
	})
	if err != nil {
		t.Fatalf("SendInvite failed: %v", err)
	}
	if header.Status != model.InterviewStatusSent {
		t.Errorf("expected interview status %q, got %q", model.InterviewStatusSent, header.Status)
	}
	if header.TimeLimitMinutes != template.TimeLimitMinutes {
		t.Errorf("expected time limit %d, got %d", template.TimeLimitMinutes, header.TimeLimitMinutes)
	}
	if header.RecruiterMessage != "Looking forward to your answers." {
		t.Errorf("recruiter message not carried over: %q", header.RecruiterMessage)
	}

	var reloaded model.JobApplication
	if err := env.db.First(&reloaded, application.ID).Error; err != nil {
		t.Fatalf("failed to reload application: %v", err)
	}
	if reloaded.Status != model.ApplicationStatusInterviewSent {
		t.Errorf("expected application status %q, got %q", model.ApplicationStatusInterviewSent, reloaded.Status)
	}
	if reloaded.UpdatedBy == nil || *reloaded.UpdatedBy != testRecruiterID {
		t.Errorf("expected application updated_by %d, got %v", testRecruiterID, reloaded.UpdatedBy)
	}
}

func TestSendInviteDuplicateIsRejected(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, testRecruiterID)
	application := env.seedApplication(t, job.ID, testCandidateID, model.ApplicationStatusPending)
	template := env.seedTemplate(t, testRecruiterID, job.ID, 3)

	req := dto.InviteCreateDTO{ApplicationID: application.ID, TemplateID: template.ID}
	if _, err := env.invitations.SendInvite(testRecruiterID, req); err != nil {
		t.Fatalf("first SendInvite failed: %v", err)
	}

	// Reset the application status so only the unique index can object.
	env.db.Model(&model.JobApplication{}).Where("id = ?", application.ID).
		Update("status", model.ApplicationStatusPending)

	_, err := env.invitations.SendInvite(testRecruiterID, req)
	if !apperror.IsKind(err, apperror.KindDuplicateInvite) {
		t.Fatalf("expected duplicate invite error, got %v", err)
	}

	var count int64
	env.db.Model(&model.StudentInterview{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one interview row, got %d", count)
	}
}

func TestSendInviteRequiresActionableApplicationStatus(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, testRecruiterID)
	application := env.seedApplication(t, job.ID, testCandidateID, model.ApplicationStatusInterviewSent)
	template := env.seedTemplate(t, testRecruiterID, job.ID, 3)

	_, err := env.invitations.SendInvite(testRecruiterID, dto.InviteCreateDTO{
		ApplicationID: application.ID,
		TemplateID:    template.ID,
	})
	if !apperror.IsKind(err, apperror.KindInvalidState) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestSendInviteOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, 2)
	application := env.seedApplication(t, job.ID, testCandidateID, model.ApplicationStatusPending)
	template := env.seedTemplate(t, 2, job.ID, 3)

	_, err := env.invitations.SendInvite(testRecruiterID, dto.InviteCreateDTO{
		ApplicationID: application.ID,
		TemplateID:    template.ID,
	})
	if !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}

func TestSendInviteTemplateMustMatchApplicationJob(t *testing.T) {
	env := newTestEnv(t)
	jobA := env.seedJob(t, testRecruiterID)
	jobB := env.seedJob(t, testRecruiterID)
	application := env.seedApplication(t, jobA.ID, testCandidateID, model.ApplicationStatusPending)
	template := env.seedTemplate(t, testRecruiterID, jobB.ID, 3)

	_, err := env.invitations.SendInvite(testRecruiterID, dto.InviteCreateDTO{
		ApplicationID: application.ID,
		TemplateID:    template.ID,
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var count int64
	env.db.Model(&model.StudentInterview{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no interview rows, got %d", count)
	}
}
