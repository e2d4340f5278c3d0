package service

import (
	"errors"
	"fmt"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/wizard"
)

// candidateFlow drives the candidate onboarding wizard. Step predicates
// only look at the fields that gate progression; everything else stays
// free-form until submission.
var candidateFlow = wizard.Flow[entity.CandidateRegistration]{
	Kind: entity.FlowCandidateOnboarding,
	Steps: []wizard.Step[entity.CandidateRegistration]{
		{
			Name: "terms",
			Complete: func(data entity.CandidateRegistration, _ map[string]bool) error {
				if !data.AgreedToTerms {
					return errors.New("terms must be accepted")
				}

				return nil
			},
		},
		{
			Name: "bio data",
			Complete: func(data entity.CandidateRegistration, attached map[string]bool) error {
				if err := requireFields(map[string]string{
					"surname":   data.Surname,
					"firstName": data.FirstName,
					"address":   data.Address,
					"dob":       data.DOB,
					"tel":       data.Tel,
				}); err != nil {
					return err
				}

				if err := ValidateEmail(data.Email); err != nil {
					return err
				}

				if !attached[entity.AttachmentFieldPassport] {
					return errors.New("passport photo is required")
				}

				return nil
			},
		},
		{
			Name: "employment and identification",
			Complete: func(data entity.CandidateRegistration, _ map[string]bool) error {
				if data.DesiredPositions[0] == "" {
					return errors.New("at least one desired position is required")
				}

				return requireFields(map[string]string{
					"validIdNumber": data.ValidIDNumber,
					"idType":        data.IDType,
					"jobMode":       data.JobMode,
				})
			},
		},
		{
			Name: "guarantors",
			Complete: func(data entity.CandidateRegistration, attached map[string]bool) error {
				for i, g := range data.Guarantors {
					if err := requireFields(map[string]string{
						fmt.Sprintf("guarantors[%d].name", i):    g.Name,
						fmt.Sprintf("guarantors[%d].address", i): g.Address,
						fmt.Sprintf("guarantors[%d].tel", i):     g.Tel,
					}); err != nil {
						return err
					}
				}

				if !attached[entity.AttachmentFieldGuarantorOneID] || !attached[entity.AttachmentFieldGuarantorTwoID] {
					return errors.New("both guarantor ID cards are required")
				}

				if !data.GuarantorConsent {
					return errors.New("guarantor consent is required")
				}

				return nil
			},
		},
		{
			Name: "payment",
			Complete: func(data entity.CandidateRegistration, _ map[string]bool) error {
				return requireFields(map[string]string{
					"paymentReference": data.PaymentReference,
				})
			},
		},
	},
}

var partnerFlow = wizard.Flow[entity.PartnerApplication]{
	Kind: entity.FlowPartnerRegistration,
	Steps: []wizard.Step[entity.PartnerApplication]{
		{
			Name: "partner type",
			Complete: func(data entity.PartnerApplication, _ map[string]bool) error {
				if !data.Type.IsValid() {
					return errors.New("partner type must be selected")
				}

				return nil
			},
		},
		{
			Name: "details",
			Complete: func(data entity.PartnerApplication, _ map[string]bool) error {
				switch data.Type {
				case entity.PartnerTypeIndividual:
					if data.Individual == nil {
						return errors.New("individual details are required")
					}

					if err := requireFields(map[string]string{
						"fullName":     data.Individual.FullName,
						"whatsapp":     data.Individual.Whatsapp,
						"primarySkill": data.Individual.PrimarySkill,
					}); err != nil {
						return err
					}

					if err := ValidateEmail(data.Individual.Email); err != nil {
						return err
					}

					return ValidateNIN(data.Individual.NIN)

				case entity.PartnerTypeOrganization:
					if data.Organization == nil {
						return errors.New("organization details are required")
					}

					if err := requireFields(map[string]string{
						"businessName": data.Organization.BusinessName,
						"contactName":  data.Organization.ContactName,
					}); err != nil {
						return err
					}

					if err := ValidateEmail(data.Organization.OfficialEmail); err != nil {
						return err
					}

					if err := ValidateCAC(data.Organization.CACNumber); err != nil {
						return err
					}

					if err := ValidateTIN(data.Organization.TIN); err != nil {
						return err
					}

					if len(data.Organization.ServicesOffered) == 0 {
						return errors.New("at least one service must be selected")
					}

					return nil

				default:
					return errors.New("partner type must be selected")
				}
			},
		},
		{
			Name: "documents and review",
			Complete: func(data entity.PartnerApplication, attached map[string]bool) error {
				switch data.Type {
				case entity.PartnerTypeIndividual:
					if !attached[entity.AttachmentFieldIDDocument] {
						return errors.New("ID document is required")
					}
				case entity.PartnerTypeOrganization:
					if !attached[entity.AttachmentFieldCACCertificate] {
						return errors.New("CAC certificate is required")
					}
				}

				return nil
			},
		},
	},
}

var contactFlow = wizard.Flow[entity.ContactSubmission]{
	Kind: entity.FlowContactIntake,
	Steps: []wizard.Step[entity.ContactSubmission]{
		{
			Name: "category",
			Complete: func(data entity.ContactSubmission, _ map[string]bool) error {
				if !data.Category.IsValid() {
					return errors.New("category must be selected")
				}

				return nil
			},
		},
		{
			Name: "services and details",
			Complete: func(data entity.ContactSubmission, _ map[string]bool) error {
				if len(data.SubServices) == 0 {
					return errors.New("at least one service must be selected")
				}

				allowed := make(map[string]bool)
				for _, s := range data.Category.SubServices() {
					allowed[s] = true
				}

				for _, s := range data.SubServices {
					if !allowed[s] {
						return fmt.Errorf("service %q does not belong to category %s", s, data.Category)
					}
				}

				if err := requireFields(map[string]string{"name": data.Name}); err != nil {
					return err
				}

				return ValidateEmail(data.Email)
			},
		},
		{
			Name: "message",
			Complete: func(data entity.ContactSubmission, _ map[string]bool) error {
				return requireFields(map[string]string{"message": data.Message})
			},
		},
	},
}

func flowLen(kind entity.FlowKind) int {
	switch kind {
	case entity.FlowCandidateOnboarding:
		return candidateFlow.Len()
	case entity.FlowPartnerRegistration:
		return partnerFlow.Len()
	case entity.FlowContactIntake:
		return contactFlow.Len()
	default:
		return 0
	}
}
