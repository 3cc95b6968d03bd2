// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package screen owns app navigation.

# Tabs

The tab set is closed: home, notes, duties, study, survey, profile and
admin, plus an internal registration screen used until the backend
knows the user. SwitchTab rejects anything outside the set, so a typo
in a caller fails loudly instead of blanking the app.

# Entry loads

Switching to a tab shows it immediately and then runs that tab's entry
loads:

  - home: dashboard widgets, loaded once and cached for re-entry
  - notes: task list reload on every entry
  - duties: one roster fetch and one month-list fetch per entry
  - study: current week's schedule
  - survey: catalog reload, so finished stages show as finished
  - profile: fresh profile plus personal survey results
  - admin: user list (admin role required)

Loads are guarded by a switch sequence number. If the user navigates
away before a load finishes, its result is dropped rather than drawn
over the newer screen. A failed load keeps the screen visible and
reports through View.ShowError.

# View

The controller never draws. It pushes typed screen data at a View,
which shows exactly one screen at a time. The terminal front end in
the ui package is one implementation; tests substitute a recorder.
*/
package screen
