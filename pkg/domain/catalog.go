package domain

// The catalogue below declares every entity kind and field of the metadata
// schema. Declaration order is traversal order: roots follow the roots slice,
// children and fields follow the order they appear here.

var (
	Image                         = root("Image")
	ImageID                       = Image.id()
	ImageName                     = Image.text("Name")
	ImageDescription              = Image.text("Description")
	ImageAcquisitionDate          = Image.field("AcquisitionDate", KindTimestamp)
	ImageExperimentRef            = Image.refTo("ExperimentRef", "Experiment")
	ImageExperimenterRef          = Image.refTo("ExperimenterRef", "Experimenter")
	ImageExperimenterGroupRef     = Image.refTo("ExperimenterGroupRef", "ExperimenterGroup")
	ImageInstrumentRef            = Image.refTo("InstrumentRef", "Instrument")
	ImageAnnotationRef            = Image.annotationRefs()
	ImageROIRef                   = Image.refsTo("ROIRef", "ROI")
	ImageMicrobeamManipulationRef = Image.refsTo("MicrobeamManipulationRef", "MicrobeamManipulation")
	ImageDatasetBackRef           = Image.back("DatasetBackRef", "Dataset")
	ImageWellSampleBackRef        = Image.back("WellSampleBackRef", "WellSample")
	ImageFolderBackRef            = Image.back("FolderBackRef", "Folder")

	ObjectiveSettings                 = Image.one("ObjectiveSettings")
	ObjectiveSettingsID               = ObjectiveSettings.refTo("ID", "Objective")
	ObjectiveSettingsCorrectionCollar = ObjectiveSettings.field("CorrectionCollar", KindFloat)
	ObjectiveSettingsMedium           = ObjectiveSettings.token("Medium", "Medium")
	ObjectiveSettingsRefractiveIndex  = ObjectiveSettings.field("RefractiveIndex", KindFloat)

	StageLabel     = Image.one("StageLabel")
	StageLabelName = StageLabel.text("Name")
	StageLabelX    = StageLabel.field("X", KindQuantity)
	StageLabelY    = StageLabel.field("Y", KindQuantity)
	StageLabelZ    = StageLabel.field("Z", KindQuantity)

	ImagingEnvironment            = Image.one("ImagingEnvironment")
	ImagingEnvironmentTemperature = ImagingEnvironment.field("Temperature", KindQuantity)
	ImagingEnvironmentAirPressure = ImagingEnvironment.field("AirPressure", KindQuantity)
	ImagingEnvironmentHumidity    = ImagingEnvironment.field("Humidity", KindPercentFraction)
	ImagingEnvironmentCO2Percent  = ImagingEnvironment.field("CO2Percent", KindPercentFraction)
	ImagingEnvironmentMap         = ImagingEnvironment.field("Map", KindPairs)

	Pixels                = Image.one("Pixels")
	PixelsID              = Pixels.id()
	PixelsDimensionOrder  = Pixels.token("DimensionOrder", "DimensionOrder")
	PixelsType            = Pixels.token("Type", "PixelType")
	PixelsSignificantBits = Pixels.field("SignificantBits", KindPositiveInt)
	PixelsInterleaved     = Pixels.field("Interleaved", KindBool)
	PixelsBigEndian       = Pixels.field("BigEndian", KindBool)
	PixelsSizeX           = Pixels.field("SizeX", KindPositiveInt)
	PixelsSizeY           = Pixels.field("SizeY", KindPositiveInt)
	PixelsSizeZ           = Pixels.field("SizeZ", KindPositiveInt)
	PixelsSizeC           = Pixels.field("SizeC", KindPositiveInt)
	PixelsSizeT           = Pixels.field("SizeT", KindPositiveInt)
	PixelsPhysicalSizeX   = Pixels.field("PhysicalSizeX", KindQuantity)
	PixelsPhysicalSizeY   = Pixels.field("PhysicalSizeY", KindQuantity)
	PixelsPhysicalSizeZ   = Pixels.field("PhysicalSizeZ", KindQuantity)
	PixelsTimeIncrement   = Pixels.field("TimeIncrement", KindQuantity)

	Channel                     = Pixels.many("Channel")
	ChannelID                   = Channel.id()
	ChannelName                 = Channel.text("Name")
	ChannelSamplesPerPixel      = Channel.field("SamplesPerPixel", KindPositiveInt)
	ChannelIlluminationType     = Channel.token("IlluminationType", "IlluminationType")
	ChannelPinholeSize          = Channel.field("PinholeSize", KindQuantity)
	ChannelAcquisitionMode      = Channel.token("AcquisitionMode", "AcquisitionMode")
	ChannelContrastMethod       = Channel.token("ContrastMethod", "ContrastMethod")
	ChannelExcitationWavelength = Channel.field("ExcitationWavelength", KindQuantity)
	ChannelEmissionWavelength   = Channel.field("EmissionWavelength", KindQuantity)
	ChannelFluor                = Channel.text("Fluor")
	ChannelNDFilter             = Channel.field("NDFilter", KindFloat)
	ChannelPockelCellSetting    = Channel.field("PockelCellSetting", KindInt)
	ChannelColor                = Channel.field("Color", KindColor)
	ChannelFilterSetRef         = Channel.refTo("FilterSetRef", "FilterSet")
	ChannelAnnotationRef        = Channel.annotationRefs()

	ChannelLightSourceSettings            = Channel.one("ChannelLightSourceSettings")
	ChannelLightSourceSettingsID          = ChannelLightSourceSettings.refTo("ID", "LightSource")
	ChannelLightSourceSettingsAttenuation = ChannelLightSourceSettings.field("Attenuation", KindPercentFraction)
	ChannelLightSourceSettingsWavelength  = ChannelLightSourceSettings.field("Wavelength", KindQuantity)

	DetectorSettings            = Channel.one("DetectorSettings")
	DetectorSettingsID          = DetectorSettings.refTo("ID", "Detector")
	DetectorSettingsOffset      = DetectorSettings.field("Offset", KindFloat)
	DetectorSettingsGain        = DetectorSettings.field("Gain", KindFloat)
	DetectorSettingsVoltage     = DetectorSettings.field("Voltage", KindQuantity)
	DetectorSettingsZoom        = DetectorSettings.field("Zoom", KindFloat)
	DetectorSettingsReadOutRate = DetectorSettings.field("ReadOutRate", KindQuantity)
	DetectorSettingsBinning     = DetectorSettings.token("Binning", "Binning")
	DetectorSettingsIntegration = DetectorSettings.field("Integration", KindPositiveInt)

	LightPath                    = Channel.one("LightPath")
	LightPathDichroicRef         = LightPath.refTo("DichroicRef", "Dichroic")
	LightPathExcitationFilterRef = LightPath.refsTo("ExcitationFilterRef", "Filter")
	LightPathEmissionFilterRef   = LightPath.refsTo("EmissionFilterRef", "Filter")
	LightPathAnnotationRef       = LightPath.annotationRefs()

	Plane              = Pixels.many("Plane")
	PlaneTheZ          = Plane.field("TheZ", KindNonNegativeInt)
	PlaneTheT          = Plane.field("TheT", KindNonNegativeInt)
	PlaneTheC          = Plane.field("TheC", KindNonNegativeInt)
	PlaneDeltaT        = Plane.field("DeltaT", KindQuantity)
	PlaneExposureTime  = Plane.field("ExposureTime", KindQuantity)
	PlanePositionX     = Plane.field("PositionX", KindQuantity)
	PlanePositionY     = Plane.field("PositionY", KindQuantity)
	PlanePositionZ     = Plane.field("PositionZ", KindQuantity)
	PlaneHashSHA1      = Plane.text("HashSHA1")
	PlaneAnnotationRef = Plane.annotationRefs()

	TiffData             = Pixels.many("TiffData")
	TiffDataFirstZ       = TiffData.field("FirstZ", KindNonNegativeInt)
	TiffDataFirstT       = TiffData.field("FirstT", KindNonNegativeInt)
	TiffDataFirstC       = TiffData.field("FirstC", KindNonNegativeInt)
	TiffDataIFD          = TiffData.field("IFD", KindNonNegativeInt)
	TiffDataPlaneCount   = TiffData.field("PlaneCount", KindNonNegativeInt)
	TiffDataUUID         = TiffData.text("UUID")
	TiffDataUUIDFileName = TiffData.text("UUIDFileName")
)

var (
	Dataset                     = root("Dataset")
	DatasetID                   = Dataset.id()
	DatasetName                 = Dataset.text("Name")
	DatasetDescription          = Dataset.text("Description")
	DatasetExperimenterRef      = Dataset.refTo("ExperimenterRef", "Experimenter")
	DatasetExperimenterGroupRef = Dataset.refTo("ExperimenterGroupRef", "ExperimenterGroup")
	DatasetImageRef             = Dataset.refsTo("ImageRef", "Image")
	DatasetAnnotationRef        = Dataset.annotationRefs()
	DatasetProjectBackRef       = Dataset.back("ProjectBackRef", "Project")

	Experiment                = root("Experiment")
	ExperimentID              = Experiment.id()
	ExperimentDescription     = Experiment.text("Description")
	ExperimentType            = Experiment.token("Type", "ExperimentType")
	ExperimentExperimenterRef = Experiment.refTo("ExperimenterRef", "Experimenter")

	MicrobeamManipulation                = Experiment.many("MicrobeamManipulation")
	MicrobeamManipulationID              = MicrobeamManipulation.id()
	MicrobeamManipulationDescription     = MicrobeamManipulation.text("Description")
	MicrobeamManipulationType            = MicrobeamManipulation.token("Type", "MicrobeamManipulationType")
	MicrobeamManipulationExperimenterRef = MicrobeamManipulation.refTo("ExperimenterRef", "Experimenter")
	MicrobeamManipulationROIRef          = MicrobeamManipulation.refsTo("ROIRef", "ROI")

	MicrobeamManipulationLightSourceSettings            = MicrobeamManipulation.many("MicrobeamManipulationLightSourceSettings")
	MicrobeamManipulationLightSourceSettingsID          = MicrobeamManipulationLightSourceSettings.refTo("ID", "LightSource")
	MicrobeamManipulationLightSourceSettingsAttenuation = MicrobeamManipulationLightSourceSettings.field("Attenuation", KindPercentFraction)
	MicrobeamManipulationLightSourceSettingsWavelength  = MicrobeamManipulationLightSourceSettings.field("Wavelength", KindQuantity)

	Experimenter              = root("Experimenter")
	ExperimenterID            = Experimenter.id()
	ExperimenterFirstName     = Experimenter.text("FirstName")
	ExperimenterMiddleName    = Experimenter.text("MiddleName")
	ExperimenterLastName      = Experimenter.text("LastName")
	ExperimenterEmail         = Experimenter.text("Email")
	ExperimenterInstitution   = Experimenter.text("Institution")
	ExperimenterUserName      = Experimenter.text("UserName")
	ExperimenterAnnotationRef = Experimenter.annotationRefs()

	ExperimenterGroup                = root("ExperimenterGroup")
	ExperimenterGroupID              = ExperimenterGroup.id()
	ExperimenterGroupName            = ExperimenterGroup.text("Name")
	ExperimenterGroupDescription     = ExperimenterGroup.text("Description")
	ExperimenterGroupExperimenterRef = ExperimenterGroup.refsTo("ExperimenterRef", "Experimenter")
	ExperimenterGroupLeader          = ExperimenterGroup.refsTo("Leader", "Experimenter")
	ExperimenterGroupAnnotationRef   = ExperimenterGroup.annotationRefs()

	Folder              = root("Folder")
	FolderID            = Folder.id()
	FolderName          = Folder.text("Name")
	FolderDescription   = Folder.text("Description")
	FolderFolderRef     = Folder.refsTo("FolderRef", "Folder")
	FolderImageRef      = Folder.refsTo("ImageRef", "Image")
	FolderROIRef        = Folder.refsTo("ROIRef", "ROI")
	FolderAnnotationRef = Folder.annotationRefs()
)

var (
	Instrument              = root("Instrument")
	InstrumentID            = Instrument.id()
	InstrumentAnnotationRef = Instrument.annotationRefs()

	Microscope             = Instrument.one("Microscope")
	MicroscopeManufacturer = Microscope.text("Manufacturer")
	MicroscopeModel        = Microscope.text("Model")
	MicroscopeSerialNumber = Microscope.text("SerialNumber")
	MicroscopeLotNumber    = Microscope.text("LotNumber")
	MicroscopeType         = Microscope.token("Type", "MicroscopeType")

	LightSource = Instrument.many("LightSource").withVariants(
		LightSourceArc.String(),
		LightSourceFilament.String(),
		LightSourceLaser.String(),
		LightSourceLightEmittingDiode.String(),
	)

	LightSourceID            = LightSource.id()
	LightSourceManufacturer  = LightSource.text("Manufacturer")
	LightSourceModel         = LightSource.text("Model")
	LightSourceSerialNumber  = LightSource.text("SerialNumber")
	LightSourceLotNumber     = LightSource.text("LotNumber")
	LightSourcePower         = LightSource.field("Power", KindQuantity)
	LightSourceAnnotationRef = LightSource.annotationRefs()

	ArcType                      = LightSource.token("Type", "ArcType", variant("Arc"))
	FilamentType                 = LightSource.token("Type", "FilamentType", variant("Filament"))
	LaserType                    = LightSource.token("Type", "LaserType", variant("Laser"))
	LaserLaserMedium             = LightSource.token("LaserMedium", "LaserMedium", variant("Laser"))
	LaserWavelength              = LightSource.field("Wavelength", KindQuantity, variant("Laser"))
	LaserFrequencyMultiplication = LightSource.field("FrequencyMultiplication", KindPositiveInt, variant("Laser"))
	LaserTuneable                = LightSource.field("Tuneable", KindBool, variant("Laser"))
	LaserPulse                   = LightSource.token("Pulse", "Pulse", variant("Laser"))
	LaserPockelCell              = LightSource.field("PockelCell", KindBool, variant("Laser"))
	LaserRepetitionRate          = LightSource.field("RepetitionRate", KindQuantity, variant("Laser"))
	LaserPump                    = LightSource.text("Pump", ref("LightSource"), variant("Laser"))

	Detector                  = Instrument.many("Detector")
	DetectorID                = Detector.id()
	DetectorManufacturer      = Detector.text("Manufacturer")
	DetectorModel             = Detector.text("Model")
	DetectorSerialNumber      = Detector.text("SerialNumber")
	DetectorLotNumber         = Detector.text("LotNumber")
	DetectorGain              = Detector.field("Gain", KindFloat)
	DetectorVoltage           = Detector.field("Voltage", KindQuantity)
	DetectorOffset            = Detector.field("Offset", KindFloat)
	DetectorZoom              = Detector.field("Zoom", KindFloat)
	DetectorAmplificationGain = Detector.field("AmplificationGain", KindFloat)
	DetectorType              = Detector.token("Type", "DetectorType")
	DetectorAnnotationRef     = Detector.annotationRefs()

	Objective                        = Instrument.many("Objective")
	ObjectiveID                      = Objective.id()
	ObjectiveManufacturer            = Objective.text("Manufacturer")
	ObjectiveModel                   = Objective.text("Model")
	ObjectiveSerialNumber            = Objective.text("SerialNumber")
	ObjectiveLotNumber               = Objective.text("LotNumber")
	ObjectiveCorrection              = Objective.token("Correction", "Correction")
	ObjectiveImmersion               = Objective.token("Immersion", "Immersion")
	ObjectiveLensNA                  = Objective.field("LensNA", KindFloat)
	ObjectiveNominalMagnification    = Objective.field("NominalMagnification", KindFloat)
	ObjectiveCalibratedMagnification = Objective.field("CalibratedMagnification", KindFloat)
	ObjectiveWorkingDistance         = Objective.field("WorkingDistance", KindQuantity)
	ObjectiveIris                    = Objective.field("Iris", KindBool)
	ObjectiveAnnotationRef           = Objective.annotationRefs()

	FilterSet                    = Instrument.many("FilterSet")
	FilterSetID                  = FilterSet.id()
	FilterSetManufacturer        = FilterSet.text("Manufacturer")
	FilterSetModel               = FilterSet.text("Model")
	FilterSetSerialNumber        = FilterSet.text("SerialNumber")
	FilterSetLotNumber           = FilterSet.text("LotNumber")
	FilterSetDichroicRef         = FilterSet.refTo("DichroicRef", "Dichroic")
	FilterSetExcitationFilterRef = FilterSet.refsTo("ExcitationFilterRef", "Filter")
	FilterSetEmissionFilterRef   = FilterSet.refsTo("EmissionFilterRef", "Filter")

	Filter              = Instrument.many("Filter")
	FilterID            = Filter.id()
	FilterManufacturer  = Filter.text("Manufacturer")
	FilterModel         = Filter.text("Model")
	FilterSerialNumber  = Filter.text("SerialNumber")
	FilterLotNumber     = Filter.text("LotNumber")
	FilterType          = Filter.token("Type", "FilterType")
	FilterFilterWheel   = Filter.text("FilterWheel")
	FilterAnnotationRef = Filter.annotationRefs()

	TransmittanceRange                = Filter.one("TransmittanceRange")
	TransmittanceRangeCutIn           = TransmittanceRange.field("CutIn", KindQuantity)
	TransmittanceRangeCutOut          = TransmittanceRange.field("CutOut", KindQuantity)
	TransmittanceRangeCutInTolerance  = TransmittanceRange.field("CutInTolerance", KindQuantity)
	TransmittanceRangeCutOutTolerance = TransmittanceRange.field("CutOutTolerance", KindQuantity)
	TransmittanceRangeTransmittance   = TransmittanceRange.field("Transmittance", KindPercentFraction)

	Dichroic              = Instrument.many("Dichroic")
	DichroicID            = Dichroic.id()
	DichroicManufacturer  = Dichroic.text("Manufacturer")
	DichroicModel         = Dichroic.text("Model")
	DichroicSerialNumber  = Dichroic.text("SerialNumber")
	DichroicLotNumber     = Dichroic.text("LotNumber")
	DichroicAnnotationRef = Dichroic.annotationRefs()
)

var (
	Plate                       = root("Plate")
	PlateID                     = Plate.id()
	PlateName                   = Plate.text("Name")
	PlateDescription            = Plate.text("Description")
	PlateStatus                 = Plate.text("Status")
	PlateExternalIdentifier     = Plate.text("ExternalIdentifier")
	PlateColumnNamingConvention = Plate.token("ColumnNamingConvention", "NamingConvention")
	PlateRowNamingConvention    = Plate.token("RowNamingConvention", "NamingConvention")
	PlateWellOriginX            = Plate.field("WellOriginX", KindQuantity)
	PlateWellOriginY            = Plate.field("WellOriginY", KindQuantity)
	PlateRows                   = Plate.field("Rows", KindPositiveInt)
	PlateColumns                = Plate.field("Columns", KindPositiveInt)
	PlateFieldIndex             = Plate.field("FieldIndex", KindNonNegativeInt)
	PlateAnnotationRef          = Plate.annotationRefs()
	PlateScreenBackRef          = Plate.back("ScreenBackRef", "Screen")

	Well                    = Plate.many("Well")
	WellID                  = Well.id()
	WellColumn              = Well.field("Column", KindNonNegativeInt)
	WellRow                 = Well.field("Row", KindNonNegativeInt)
	WellColor               = Well.field("Color", KindColor)
	WellExternalDescription = Well.text("ExternalDescription")
	WellExternalIdentifier  = Well.text("ExternalIdentifier")
	WellType                = Well.text("Type")
	WellReagentRef          = Well.refTo("ReagentRef", "Reagent")
	WellAnnotationRef       = Well.annotationRefs()

	WellSample                        = Well.many("WellSample")
	WellSampleID                      = WellSample.id()
	WellSamplePositionX               = WellSample.field("PositionX", KindQuantity)
	WellSamplePositionY               = WellSample.field("PositionY", KindQuantity)
	WellSampleTimepoint               = WellSample.field("Timepoint", KindTimestamp)
	WellSampleIndex                   = WellSample.field("Index", KindNonNegativeInt)
	WellSampleImageRef                = WellSample.refTo("ImageRef", "Image")
	WellSamplePlateAcquisitionBackRef = WellSample.back("PlateAcquisitionBackRef", "PlateAcquisition")

	PlateAcquisition                  = Plate.many("PlateAcquisition")
	PlateAcquisitionID                = PlateAcquisition.id()
	PlateAcquisitionName              = PlateAcquisition.text("Name")
	PlateAcquisitionDescription       = PlateAcquisition.text("Description")
	PlateAcquisitionStartTime         = PlateAcquisition.field("StartTime", KindTimestamp)
	PlateAcquisitionEndTime           = PlateAcquisition.field("EndTime", KindTimestamp)
	PlateAcquisitionMaximumFieldCount = PlateAcquisition.field("MaximumFieldCount", KindPositiveInt)
	PlateAcquisitionWellSampleRef     = PlateAcquisition.refsTo("WellSampleRef", "WellSample")
	PlateAcquisitionAnnotationRef     = PlateAcquisition.annotationRefs()

	Screen                      = root("Screen")
	ScreenID                    = Screen.id()
	ScreenName                  = Screen.text("Name")
	ScreenDescription           = Screen.text("Description")
	ScreenProtocolIdentifier    = Screen.text("ProtocolIdentifier")
	ScreenProtocolDescription   = Screen.text("ProtocolDescription")
	ScreenReagentSetIdentifier  = Screen.text("ReagentSetIdentifier")
	ScreenReagentSetDescription = Screen.text("ReagentSetDescription")
	ScreenType                  = Screen.text("Type")
	ScreenPlateRef              = Screen.refsTo("PlateRef", "Plate")
	ScreenAnnotationRef         = Screen.annotationRefs()

	Reagent                  = Screen.many("Reagent")
	ReagentID                = Reagent.id()
	ReagentName              = Reagent.text("Name")
	ReagentDescription       = Reagent.text("Description")
	ReagentReagentIdentifier = Reagent.text("ReagentIdentifier")
	ReagentAnnotationRef     = Reagent.annotationRefs()
	ReagentWellBackRef       = Reagent.back("WellBackRef", "Well")
)

var (
	ROI              = root("ROI")
	ROIID            = ROI.id()
	ROIName          = ROI.text("Name")
	ROIDescription   = ROI.text("Description")
	ROIAnnotationRef = ROI.annotationRefs()
	ROIImageBackRef  = ROI.back("ImageBackRef", "Image")

	// Union only groups the shapes of an ROI.
	Union = ROI.one("Union")

	Shape = Union.many("Shape").withVariants(
		ShapeEllipse.String(),
		ShapeLine.String(),
		ShapeMask.String(),
		ShapePoint.String(),
		ShapePolygon.String(),
		ShapePolyline.String(),
		ShapeRectangle.String(),
		ShapeLabel.String(),
	)

	ShapeID              = Shape.id()
	ShapeFillColor       = Shape.field("FillColor", KindColor)
	ShapeFillRule        = Shape.token("FillRule", "FillRule")
	ShapeStrokeColor     = Shape.field("StrokeColor", KindColor)
	ShapeStrokeWidth     = Shape.field("StrokeWidth", KindQuantity)
	ShapeStrokeDashArray = Shape.text("StrokeDashArray")
	ShapeFontFamily      = Shape.token("FontFamily", "FontFamily")
	ShapeFontSize        = Shape.field("FontSize", KindQuantity)
	ShapeFontStyle       = Shape.token("FontStyle", "FontStyle")
	ShapeLocked          = Shape.field("Locked", KindBool)
	ShapeVisible         = Shape.field("Visible", KindBool)
	ShapeText            = Shape.text("Text")
	ShapeTheZ            = Shape.field("TheZ", KindNonNegativeInt)
	ShapeTheT            = Shape.field("TheT", KindNonNegativeInt)
	ShapeTheC            = Shape.field("TheC", KindNonNegativeInt)
	ShapeTransform       = Shape.field("Transform", KindTransform)
	ShapeAnnotationRef   = Shape.annotationRefs()

	EllipseX       = Shape.field("X", KindFloat, variant("Ellipse"))
	EllipseY       = Shape.field("Y", KindFloat, variant("Ellipse"))
	EllipseRadiusX = Shape.field("RadiusX", KindFloat, variant("Ellipse"))
	EllipseRadiusY = Shape.field("RadiusY", KindFloat, variant("Ellipse"))

	LineX1          = Shape.field("X1", KindFloat, variant("Line"))
	LineY1          = Shape.field("Y1", KindFloat, variant("Line"))
	LineX2          = Shape.field("X2", KindFloat, variant("Line"))
	LineY2          = Shape.field("Y2", KindFloat, variant("Line"))
	LineMarkerStart = Shape.token("MarkerStart", "Marker", variant("Line"))
	LineMarkerEnd   = Shape.token("MarkerEnd", "Marker", variant("Line"))

	MaskX       = Shape.field("X", KindFloat, variant("Mask"))
	MaskY       = Shape.field("Y", KindFloat, variant("Mask"))
	MaskWidth   = Shape.field("Width", KindFloat, variant("Mask"))
	MaskHeight  = Shape.field("Height", KindFloat, variant("Mask"))
	MaskBinData = Shape.field("BinData", KindBytes, variant("Mask"))

	PointX = Shape.field("X", KindFloat, variant("Point"))
	PointY = Shape.field("Y", KindFloat, variant("Point"))

	PolygonPoints = Shape.text("Points", variant("Polygon"))

	PolylinePoints      = Shape.text("Points", variant("Polyline"))
	PolylineMarkerStart = Shape.token("MarkerStart", "Marker", variant("Polyline"))
	PolylineMarkerEnd   = Shape.token("MarkerEnd", "Marker", variant("Polyline"))

	RectangleX      = Shape.field("X", KindFloat, variant("Rectangle"))
	RectangleY      = Shape.field("Y", KindFloat, variant("Rectangle"))
	RectangleWidth  = Shape.field("Width", KindFloat, variant("Rectangle"))
	RectangleHeight = Shape.field("Height", KindFloat, variant("Rectangle"))

	LabelX = Shape.field("X", KindFloat, variant("Label"))
	LabelY = Shape.field("Y", KindFloat, variant("Label"))

	Project                     = root("Project")
	ProjectID                   = Project.id()
	ProjectName                 = Project.text("Name")
	ProjectDescription          = Project.text("Description")
	ProjectExperimenterRef      = Project.refTo("ExperimenterRef", "Experimenter")
	ProjectExperimenterGroupRef = Project.refTo("ExperimenterGroupRef", "ExperimenterGroup")
	ProjectDatasetRef           = Project.refsTo("DatasetRef", "Dataset")
	ProjectAnnotationRef        = Project.annotationRefs()
)

// Structured annotations. Every kind carries the same base fields and the
// back-references to the entities annotated by it.
var (
	BooleanAnnotation              = root("BooleanAnnotation")
	BooleanAnnotationID            = BooleanAnnotation.id()
	BooleanAnnotationNamespace     = BooleanAnnotation.text("Namespace")
	BooleanAnnotationDescription   = BooleanAnnotation.text("Description")
	BooleanAnnotationAnnotator     = BooleanAnnotation.refTo("Annotator", "Experimenter")
	BooleanAnnotationValue         = BooleanAnnotation.field("Value", KindBool)
	BooleanAnnotationAnnotationRef = BooleanAnnotation.annotationRefs()
	BooleanAnnotationImageBackRef  = BooleanAnnotation.back("ImageBackRef", "Image")
	BooleanAnnotationPlateBackRef  = BooleanAnnotation.back("PlateBackRef", "Plate")

	CommentAnnotation              = root("CommentAnnotation")
	CommentAnnotationID            = CommentAnnotation.id()
	CommentAnnotationNamespace     = CommentAnnotation.text("Namespace")
	CommentAnnotationDescription   = CommentAnnotation.text("Description")
	CommentAnnotationAnnotator     = CommentAnnotation.refTo("Annotator", "Experimenter")
	CommentAnnotationValue         = CommentAnnotation.text("Value")
	CommentAnnotationAnnotationRef = CommentAnnotation.annotationRefs()
	CommentAnnotationImageBackRef  = CommentAnnotation.back("ImageBackRef", "Image")
	CommentAnnotationPlateBackRef  = CommentAnnotation.back("PlateBackRef", "Plate")

	DoubleAnnotation              = root("DoubleAnnotation")
	DoubleAnnotationID            = DoubleAnnotation.id()
	DoubleAnnotationNamespace     = DoubleAnnotation.text("Namespace")
	DoubleAnnotationDescription   = DoubleAnnotation.text("Description")
	DoubleAnnotationAnnotator     = DoubleAnnotation.refTo("Annotator", "Experimenter")
	DoubleAnnotationValue         = DoubleAnnotation.field("Value", KindFloat)
	DoubleAnnotationAnnotationRef = DoubleAnnotation.annotationRefs()
	DoubleAnnotationImageBackRef  = DoubleAnnotation.back("ImageBackRef", "Image")
	DoubleAnnotationPlateBackRef  = DoubleAnnotation.back("PlateBackRef", "Plate")

	FileAnnotation              = root("FileAnnotation")
	FileAnnotationID            = FileAnnotation.id()
	FileAnnotationNamespace     = FileAnnotation.text("Namespace")
	FileAnnotationDescription   = FileAnnotation.text("Description")
	FileAnnotationAnnotator     = FileAnnotation.refTo("Annotator", "Experimenter")
	FileAnnotationAnnotationRef = FileAnnotation.annotationRefs()
	FileAnnotationImageBackRef  = FileAnnotation.back("ImageBackRef", "Image")
	FileAnnotationPlateBackRef  = FileAnnotation.back("PlateBackRef", "Plate")

	BinaryFile         = FileAnnotation.one("BinaryFile")
	BinaryFileFileName = BinaryFile.text("FileName")
	BinaryFileSize     = BinaryFile.field("Size", KindNonNegativeLong)
	BinaryFileMIMEType = BinaryFile.text("MIMEType")

	ListAnnotation              = root("ListAnnotation")
	ListAnnotationID            = ListAnnotation.id()
	ListAnnotationNamespace     = ListAnnotation.text("Namespace")
	ListAnnotationDescription   = ListAnnotation.text("Description")
	ListAnnotationAnnotator     = ListAnnotation.refTo("Annotator", "Experimenter")
	ListAnnotationAnnotationRef = ListAnnotation.annotationRefs()
	ListAnnotationImageBackRef  = ListAnnotation.back("ImageBackRef", "Image")
	ListAnnotationPlateBackRef  = ListAnnotation.back("PlateBackRef", "Plate")

	LongAnnotation              = root("LongAnnotation")
	LongAnnotationID            = LongAnnotation.id()
	LongAnnotationNamespace     = LongAnnotation.text("Namespace")
	LongAnnotationDescription   = LongAnnotation.text("Description")
	LongAnnotationAnnotator     = LongAnnotation.refTo("Annotator", "Experimenter")
	LongAnnotationValue         = LongAnnotation.field("Value", KindLong)
	LongAnnotationAnnotationRef = LongAnnotation.annotationRefs()
	LongAnnotationImageBackRef  = LongAnnotation.back("ImageBackRef", "Image")
	LongAnnotationPlateBackRef  = LongAnnotation.back("PlateBackRef", "Plate")

	MapAnnotation              = root("MapAnnotation")
	MapAnnotationID            = MapAnnotation.id()
	MapAnnotationNamespace     = MapAnnotation.text("Namespace")
	MapAnnotationDescription   = MapAnnotation.text("Description")
	MapAnnotationAnnotator     = MapAnnotation.refTo("Annotator", "Experimenter")
	MapAnnotationValue         = MapAnnotation.field("Value", KindPairs)
	MapAnnotationAnnotationRef = MapAnnotation.annotationRefs()
	MapAnnotationImageBackRef  = MapAnnotation.back("ImageBackRef", "Image")
	MapAnnotationPlateBackRef  = MapAnnotation.back("PlateBackRef", "Plate")

	TagAnnotation              = root("TagAnnotation")
	TagAnnotationID            = TagAnnotation.id()
	TagAnnotationNamespace     = TagAnnotation.text("Namespace")
	TagAnnotationDescription   = TagAnnotation.text("Description")
	TagAnnotationAnnotator     = TagAnnotation.refTo("Annotator", "Experimenter")
	TagAnnotationValue         = TagAnnotation.text("Value")
	TagAnnotationAnnotationRef = TagAnnotation.annotationRefs()
	TagAnnotationImageBackRef  = TagAnnotation.back("ImageBackRef", "Image")
	TagAnnotationPlateBackRef  = TagAnnotation.back("PlateBackRef", "Plate")

	TermAnnotation              = root("TermAnnotation")
	TermAnnotationID            = TermAnnotation.id()
	TermAnnotationNamespace     = TermAnnotation.text("Namespace")
	TermAnnotationDescription   = TermAnnotation.text("Description")
	TermAnnotationAnnotator     = TermAnnotation.refTo("Annotator", "Experimenter")
	TermAnnotationValue         = TermAnnotation.text("Value")
	TermAnnotationAnnotationRef = TermAnnotation.annotationRefs()
	TermAnnotationImageBackRef  = TermAnnotation.back("ImageBackRef", "Image")
	TermAnnotationPlateBackRef  = TermAnnotation.back("PlateBackRef", "Plate")

	TimestampAnnotation              = root("TimestampAnnotation")
	TimestampAnnotationID            = TimestampAnnotation.id()
	TimestampAnnotationNamespace     = TimestampAnnotation.text("Namespace")
	TimestampAnnotationDescription   = TimestampAnnotation.text("Description")
	TimestampAnnotationAnnotator     = TimestampAnnotation.refTo("Annotator", "Experimenter")
	TimestampAnnotationValue         = TimestampAnnotation.field("Value", KindTimestamp)
	TimestampAnnotationAnnotationRef = TimestampAnnotation.annotationRefs()
	TimestampAnnotationImageBackRef  = TimestampAnnotation.back("ImageBackRef", "Image")
	TimestampAnnotationPlateBackRef  = TimestampAnnotation.back("PlateBackRef", "Plate")

	XMLAnnotation              = root("XMLAnnotation")
	XMLAnnotationID            = XMLAnnotation.id()
	XMLAnnotationNamespace     = XMLAnnotation.text("Namespace")
	XMLAnnotationDescription   = XMLAnnotation.text("Description")
	XMLAnnotationAnnotator     = XMLAnnotation.refTo("Annotator", "Experimenter")
	XMLAnnotationValue         = XMLAnnotation.text("Value")
	XMLAnnotationAnnotationRef = XMLAnnotation.annotationRefs()
	XMLAnnotationImageBackRef  = XMLAnnotation.back("ImageBackRef", "Image")
	XMLAnnotationPlateBackRef  = XMLAnnotation.back("PlateBackRef", "Plate")
)

var roots = []*Entity{
	Image,
	Dataset,
	Experiment,
	Experimenter,
	ExperimenterGroup,
	Folder,
	Instrument,
	Plate,
	Screen,
	ROI,
	Project,
	BooleanAnnotation,
	CommentAnnotation,
	DoubleAnnotation,
	FileAnnotation,
	ListAnnotation,
	LongAnnotation,
	MapAnnotation,
	TagAnnotation,
	TermAnnotation,
	TimestampAnnotation,
	XMLAnnotation,
}
