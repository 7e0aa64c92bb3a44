package handlers

// This file contains OpenAPI/Swagger documentation for the journal endpoints

// Today returns the question of the current day
// @Summary Today's question
// @Description Returns the question selected for the current calendar date
// @Tags questions
// @Produce json
// @Success 200 {object} handlers.QuestionResponse
// @Router /questions/today [get]

// ForDate returns the question of any day
// @Summary Question for a date
// @Description Returns the question selected for a YYYY-MM-DD date
// @Tags questions
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} handlers.QuestionResponse
// @Failure 400 {object} api.ErrorResponse "Invalid date"
// @Router /questions/{date} [get]

// List returns the answer history
// @Summary List answers
// @Description Returns answers newest first, optionally filtered by a trailing window and a text query
// @Tags answers
// @Produce json
// @Param filter query string false "Time window" Enums(all, week, month, year)
// @Param q query string false "Case-insensitive text search"
// @Success 200 {object} handlers.AnswerListResponse
// @Failure 400 {object} api.ErrorResponse "Invalid filter"
// @Failure 500 {object} api.ErrorResponse "Storage failure"
// @Failure 503 {object} api.ErrorResponse "Storage unavailable"
// @Router /answers [get]

// Submit answers today's question
// @Summary Answer today's question
// @Description Stores the answer for today's question, replacing an earlier answer for the same date
// @Tags answers
// @Accept json
// @Produce json
// @Param request body handlers.SubmitAnswerRequest true "Request body"
// @Success 201 {object} handlers.AnswerView
// @Failure 400 {object} api.ErrorResponse "Validation error"
// @Failure 500 {object} api.ErrorResponse "Storage failure"
// @Failure 503 {object} api.ErrorResponse "Storage unavailable"
// @Router /answers [post]

// ForDate returns the answer of a day
// @Summary Answer for a date
// @Description Returns the answer recorded for a date
// @Tags answers
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} handlers.AnswerView
// @Failure 400 {object} api.ErrorResponse "Invalid date"
// @Failure 404 {object} api.ErrorResponse "No answer for the date"
// @Router /answers/{date} [get]

// Delete removes an answer
// @Summary Delete an answer
// @Description Removes one answer by id
// @Tags answers
// @Param id path string true "Answer id"
// @Success 204 "Deleted"
// @Failure 404 {object} api.ErrorResponse "Unknown answer"
// @Router /answers/{id} [delete]

// ToggleFavorite flips the favorite flag
// @Summary Toggle favorite
// @Description Flips the favorite flag of an answer
// @Tags answers
// @Produce json
// @Param id path string true "Answer id"
// @Success 200 {object} handlers.AnswerView
// @Failure 404 {object} api.ErrorResponse "Unknown answer"
// @Router /answers/{id}/favorite [post]

// Favorites lists favorite answers
// @Summary List favorites
// @Description Returns favorite answers newest first
// @Tags answers
// @Produce json
// @Success 200 {object} handlers.AnswerListResponse
// @Router /favorites [get]

// Export downloads every answer
// @Summary Export answers
// @Description Downloads every stored answer as indented JSON
// @Tags answers
// @Produce json
// @Success 200 {array} entities.Answer
// @Router /export [get]

// Analysis returns the theme analysis
// @Summary Theme analysis
// @Description Returns the all-time theme analysis with an insight sentence
// @Tags insights
// @Produce json
// @Success 200 {object} services.AnalysisResult
// @Router /analysis [get]

// Summary returns the statistics view
// @Summary Statistics summary
// @Description Returns totals, streak, word statistics and an encouragement message
// @Tags insights
// @Produce json
// @Success 200 {object} services.Summary
// @Router /insights/summary [get]

// Get returns the settings
// @Summary Get settings
// @Description Returns the current settings and the resolved theme
// @Tags settings
// @Produce json
// @Param systemDark query bool false "Whether the client's system scheme is dark"
// @Success 200 {object} handlers.SettingsResponse
// @Router /settings [get]

// Update changes the settings
// @Summary Update settings
// @Description Applies the given fields and persists the result
// @Tags settings
// @Accept json
// @Produce json
// @Param request body handlers.UpdateSettingsRequest true "Request body"
// @Success 200 {object} handlers.SettingsResponse
// @Failure 400 {object} api.ErrorResponse "Validation error"
// @Router /settings [put]

// List returns a day's journal entries
// @Summary Journal entries for a date
// @Description Returns the free-form entries of a date, newest first. Defaults to today
// @Tags journal
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} entities.JournalEntry
// @Failure 400 {object} api.ErrorResponse "Invalid date"
// @Router /journal [get]

// Add stores a journal entry
// @Summary Add journal entry
// @Description Stores a free-form entry under today's date
// @Tags journal
// @Accept json
// @Produce json
// @Param request body handlers.AddJournalEntryRequest true "Request body"
// @Success 201 {object} entities.JournalEntry
// @Failure 400 {object} api.ErrorResponse "Validation error"
// @Router /journal [post]

// Delete removes a journal entry
// @Summary Delete journal entry
// @Description Removes one entry by id
// @Tags journal
// @Param id path string true "Entry id"
// @Success 204 "Deleted"
// @Failure 404 {object} api.ErrorResponse "Unknown entry"
// @Router /journal/{id} [delete]

// ClearAll removes the stored data
// @Summary Clear all data
// @Description Removes the stored answers and settings
// @Tags data
// @Success 204 "Cleared"
// @Failure 500 {object} api.ErrorResponse "Storage failure"
// @Router /data [delete]
