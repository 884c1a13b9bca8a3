package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrExpenseAmountRequired   = errors.New("expenses must have an amount")
	ErrExpenseCategoryRequired = errors.New("expenses must have a category")
)
