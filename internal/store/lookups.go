package store

import "agentcrm/internal/domain/crm"

func (s Snapshot) CustomerByID(id string) (crm.Customer, bool) {
	return findByID(s.Customers, id, func(c crm.Customer) string { return c.ID })
}

func (s Snapshot) DealByID(id string) (crm.Deal, bool) {
	return findByID(s.Deals, id, func(d crm.Deal) string { return d.ID })
}

func (s Snapshot) ICPProfileByID(id string) (crm.ICPProfile, bool) {
	return findByID(s.ICPProfiles, id, func(p crm.ICPProfile) string { return p.ID })
}

func (s Snapshot) BatchByID(id string) (crm.SDRBatch, bool) {
	return findByID(s.SDRBatches, id, func(b crm.SDRBatch) string { return b.ID })
}

func (s Snapshot) LeadByID(id string) (crm.SDRLead, bool) {
	return findByID(s.SDRLeads, id, func(l crm.SDRLead) string { return l.ID })
}

func (s Snapshot) TemplateByID(id string) (crm.EmailTemplate, bool) {
	return findByID(s.EmailTemplates, id, func(t crm.EmailTemplate) string { return t.ID })
}
