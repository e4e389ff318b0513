package crm

import "errors"

var (
	ErrProfileNotFound  = errors.New("icp profile not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDealNotFound     = errors.New("deal not found")
	ErrTemplateNotFound = errors.New("email template not found")
)
