package vita49

// CIF2 carries stream- and emitter-identity words. All fields are plain
// 32-bit identifiers except the two 128-bit UUIDs.

func (c *Context) Bind() (uint32, bool) { return getU32(c.f.bind) }
func (c *Context) SetBind(v uint32)     { c.f.bind = &v; c.f.markPresent(FieldBind) }
func (c *Context) ClearBind()           { c.f.clearField(FieldBind) }

func (c *Context) CitedSID() (uint32, bool) { return getU32(c.f.citedSID) }
func (c *Context) SetCitedSID(v uint32)     { c.f.citedSID = &v; c.f.markPresent(FieldCitedSID) }
func (c *Context) ClearCitedSID()           { c.f.clearField(FieldCitedSID) }

func (c *Context) SiblingSID() (uint32, bool) { return getU32(c.f.siblingSID) }
func (c *Context) SetSiblingSID(v uint32)     { c.f.siblingSID = &v; c.f.markPresent(FieldSiblingSID) }
func (c *Context) ClearSiblingSID()           { c.f.clearField(FieldSiblingSID) }

func (c *Context) ParentSID() (uint32, bool) { return getU32(c.f.parentSID) }
func (c *Context) SetParentSID(v uint32)     { c.f.parentSID = &v; c.f.markPresent(FieldParentSID) }
func (c *Context) ClearParentSID()           { c.f.clearField(FieldParentSID) }

func (c *Context) ChildSID() (uint32, bool) { return getU32(c.f.childSID) }
func (c *Context) SetChildSID(v uint32)     { c.f.childSID = &v; c.f.markPresent(FieldChildSID) }
func (c *Context) ClearChildSID()           { c.f.clearField(FieldChildSID) }

func (c *Context) CitedMessageID() (uint32, bool) { return getU32(c.f.citedMessageID) }
func (c *Context) SetCitedMessageID(v uint32) {
	c.f.citedMessageID = &v
	c.f.markPresent(FieldCitedMessageID)
}
func (c *Context) ClearCitedMessageID() { c.f.clearField(FieldCitedMessageID) }

func (c *Context) ControlleeID() (uint32, bool) { return getU32(c.f.controlleeID) }
func (c *Context) SetControlleeID(v uint32) {
	c.f.controlleeID = &v
	c.f.markPresent(FieldControlleeID)
}
func (c *Context) ClearControlleeID() { c.f.clearField(FieldControlleeID) }

func (c *Context) ControlleeUUID() (UUID, bool) {
	if c.f.controlleeUUID == nil {
		return UUID{}, false
	}
	return *c.f.controlleeUUID, true
}
func (c *Context) SetControlleeUUID(u UUID) {
	c.f.controlleeUUID = &u
	c.f.markPresent(FieldControlleeUUID)
}
func (c *Context) ClearControlleeUUID() { c.f.clearField(FieldControlleeUUID) }

func (c *Context) ControllerID() (uint32, bool) { return getU32(c.f.controllerID) }
func (c *Context) SetControllerID(v uint32) {
	c.f.controllerID = &v
	c.f.markPresent(FieldControllerID)
}
func (c *Context) ClearControllerID() { c.f.clearField(FieldControllerID) }

func (c *Context) ControllerUUID() (UUID, bool) {
	if c.f.controllerUUID == nil {
		return UUID{}, false
	}
	return *c.f.controllerUUID, true
}
func (c *Context) SetControllerUUID(u UUID) {
	c.f.controllerUUID = &u
	c.f.markPresent(FieldControllerUUID)
}
func (c *Context) ClearControllerUUID() { c.f.clearField(FieldControllerUUID) }

func (c *Context) InformationSource() (uint32, bool) { return getU32(c.f.informationSource) }
func (c *Context) SetInformationSource(v uint32) {
	c.f.informationSource = &v
	c.f.markPresent(FieldInformationSource)
}
func (c *Context) ClearInformationSource() { c.f.clearField(FieldInformationSource) }

func (c *Context) TrackID() (uint32, bool) { return getU32(c.f.trackID) }
func (c *Context) SetTrackID(v uint32)     { c.f.trackID = &v; c.f.markPresent(FieldTrackID) }
func (c *Context) ClearTrackID()           { c.f.clearField(FieldTrackID) }

func (c *Context) CountryCode() (uint32, bool) { return getU32(c.f.countryCode) }
func (c *Context) SetCountryCode(v uint32)     { c.f.countryCode = &v; c.f.markPresent(FieldCountryCode) }
func (c *Context) ClearCountryCode()           { c.f.clearField(FieldCountryCode) }

func (c *Context) OperatorID() (uint32, bool) { return getU32(c.f.operatorID) }
func (c *Context) SetOperatorID(v uint32)     { c.f.operatorID = &v; c.f.markPresent(FieldOperatorID) }
func (c *Context) ClearOperatorID()           { c.f.clearField(FieldOperatorID) }

func (c *Context) PlatformClass() (uint32, bool) { return getU32(c.f.platformClass) }
func (c *Context) SetPlatformClass(v uint32) {
	c.f.platformClass = &v
	c.f.markPresent(FieldPlatformClass)
}
func (c *Context) ClearPlatformClass() { c.f.clearField(FieldPlatformClass) }

func (c *Context) PlatformInstance() (uint32, bool) { return getU32(c.f.platformInstance) }
func (c *Context) SetPlatformInstance(v uint32) {
	c.f.platformInstance = &v
	c.f.markPresent(FieldPlatformInstance)
}
func (c *Context) ClearPlatformInstance() { c.f.clearField(FieldPlatformInstance) }

func (c *Context) PlatformDisplay() (uint32, bool) { return getU32(c.f.platformDisplay) }
func (c *Context) SetPlatformDisplay(v uint32) {
	c.f.platformDisplay = &v
	c.f.markPresent(FieldPlatformDisplay)
}
func (c *Context) ClearPlatformDisplay() { c.f.clearField(FieldPlatformDisplay) }

func (c *Context) EMSDeviceClass() (uint32, bool) { return getU32(c.f.emsDeviceClass) }
func (c *Context) SetEMSDeviceClass(v uint32) {
	c.f.emsDeviceClass = &v
	c.f.markPresent(FieldEMSDeviceClass)
}
func (c *Context) ClearEMSDeviceClass() { c.f.clearField(FieldEMSDeviceClass) }

func (c *Context) EMSDeviceType() (uint32, bool) { return getU32(c.f.emsDeviceType) }
func (c *Context) SetEMSDeviceType(v uint32) {
	c.f.emsDeviceType = &v
	c.f.markPresent(FieldEMSDeviceType)
}
func (c *Context) ClearEMSDeviceType() { c.f.clearField(FieldEMSDeviceType) }

func (c *Context) EMSDeviceInstance() (uint32, bool) { return getU32(c.f.emsDeviceInstance) }
func (c *Context) SetEMSDeviceInstance(v uint32) {
	c.f.emsDeviceInstance = &v
	c.f.markPresent(FieldEMSDeviceInstance)
}
func (c *Context) ClearEMSDeviceInstance() { c.f.clearField(FieldEMSDeviceInstance) }

func (c *Context) ModulationClass() (uint32, bool) { return getU32(c.f.modulationClass) }
func (c *Context) SetModulationClass(v uint32) {
	c.f.modulationClass = &v
	c.f.markPresent(FieldModulationClass)
}
func (c *Context) ClearModulationClass() { c.f.clearField(FieldModulationClass) }

func (c *Context) ModulationType() (uint32, bool) { return getU32(c.f.modulationType) }
func (c *Context) SetModulationType(v uint32) {
	c.f.modulationType = &v
	c.f.markPresent(FieldModulationType)
}
func (c *Context) ClearModulationType() { c.f.clearField(FieldModulationType) }

func (c *Context) FunctionID() (uint32, bool) { return getU32(c.f.functionID) }
func (c *Context) SetFunctionID(v uint32)     { c.f.functionID = &v; c.f.markPresent(FieldFunctionID) }
func (c *Context) ClearFunctionID()           { c.f.clearField(FieldFunctionID) }

func (c *Context) ModeID() (uint32, bool) { return getU32(c.f.modeID) }
func (c *Context) SetModeID(v uint32)     { c.f.modeID = &v; c.f.markPresent(FieldModeID) }
func (c *Context) ClearModeID()           { c.f.clearField(FieldModeID) }

func (c *Context) EventID() (uint32, bool) { return getU32(c.f.eventID) }
func (c *Context) SetEventID(v uint32)     { c.f.eventID = &v; c.f.markPresent(FieldEventID) }
func (c *Context) ClearEventID()           { c.f.clearField(FieldEventID) }

func (c *Context) FunctionPriorityID() (uint32, bool) { return getU32(c.f.functionPriorityID) }
func (c *Context) SetFunctionPriorityID(v uint32) {
	c.f.functionPriorityID = &v
	c.f.markPresent(FieldFunctionPriorityID)
}
func (c *Context) ClearFunctionPriorityID() { c.f.clearField(FieldFunctionPriorityID) }

func (c *Context) CommunicationPriorityID() (uint32, bool) {
	return getU32(c.f.communicationPriorityID)
}
func (c *Context) SetCommunicationPriorityID(v uint32) {
	c.f.communicationPriorityID = &v
	c.f.markPresent(FieldCommunicationPriorityID)
}
func (c *Context) ClearCommunicationPriorityID() { c.f.clearField(FieldCommunicationPriorityID) }

func (c *Context) RFFootprint() (uint32, bool) { return getU32(c.f.rfFootprint) }
func (c *Context) SetRFFootprint(v uint32)     { c.f.rfFootprint = &v; c.f.markPresent(FieldRFFootprint) }
func (c *Context) ClearRFFootprint()           { c.f.clearField(FieldRFFootprint) }

func (c *Context) RFFootprintRange() (uint32, bool) { return getU32(c.f.rfFootprintRange) }
func (c *Context) SetRFFootprintRange(v uint32) {
	c.f.rfFootprintRange = &v
	c.f.markPresent(FieldRFFootprintRange)
}
func (c *Context) ClearRFFootprintRange() { c.f.clearField(FieldRFFootprintRange) }
