// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey drives the pairwise duty-difficulty survey.

A Flow runs one user through the stage sequence for their gender:
main duty objects then canteen objects, or a single combined stage for
female users. Each stage presents every pair of objects; the user
picks which is harder (or equal), and nothing is sent until the whole
stage is answered. A stage whose ballot comes back empty is skipped,
and the survey finalizes once no stage with pairs remains.

Delivery is sequential and resumable. SubmitStage sends votes one by
one in presentation order; each acknowledged vote is persisted through
a VoteStore before the next is attempted, and the first failure stops
the run. A later SubmitStage, or a fresh Flow after a restart, skips
the pairs whose votes already reached the backend. Completing the last
stage finalizes the survey server-side.
*/
package survey
