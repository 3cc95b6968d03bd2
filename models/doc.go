// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
gateway and the controllers.

# Domain Types

  - Profile: the signed-in cadet (name, group, course, role, gender)
  - Duty: one roster entry (date, short role code, full role name)
  - BrigadeMember: one person in a day's duty brigade
  - Task: a personal note with optional reminder deadline
  - Pair: one pairwise "which duty object is harder" question
  - SurveyInfo / CustomSurvey: survey catalog entries
  - RatingEntry, Notification, Lesson, AdminUser

# Request Types

Types marshalled into POST/PATCH bodies:

  - UpdateUserRequest, AddTaskRequest, EditTaskRequest, DoneTaskRequest,
    DeleteTaskRequest, SetReminderRequest
  - PairVoteRequest, CustomVoteRequest
  - SetRoleRequest

# Response Types

Each response type carries an Error field; the backend reports failures
both as non-2xx statuses and as a 200 body with a non-empty error field,
and the gateway normalizes both into *gateway.APIError.

# Constants

Roles:

	RoleUser, RoleSergeant, RoleAssistant, RoleAdmin

Survey stages (submission order is fixed):

	StageMain → StageCanteen; StageFemale is a single stage

Pairwise choices:

	ChoiceA, ChoiceB, ChoiceEqual

Vote delivery status during a stage submission:

	VotePending, VoteSent, VoteFailed
*/
package models
