package iso

import "encoding/xml"

// childOrder lists, for the containers that are commonly written to, the
// sequence of children mandated by the ISO19139 schemas.
var childOrder = map[xml.Name][]xml.Name{
	GMD("MD_Metadata"): {
		GMD("fileIdentifier"), GMD("language"), GMD("characterSet"), GMD("parentIdentifier"),
		GMD("hierarchyLevel"), GMD("hierarchyLevelName"), GMD("contact"), GMD("dateStamp"),
		GMD("metadataStandardName"), GMD("metadataStandardVersion"), GMD("dataSetURI"), GMD("locale"),
		GMD("spatialRepresentationInfo"), GMD("referenceSystemInfo"), GMD("metadataExtensionInfo"),
		GMD("identificationInfo"), GMD("contentInfo"), GMD("distributionInfo"), GMD("dataQualityInfo"),
		GMD("portrayalCatalogueInfo"), GMD("metadataConstraints"), GMD("applicationSchemaInfo"),
		GMD("metadataMaintenance"), GMD("series"), GMD("describes"), GMD("propertyType"),
		GMD("featureType"), GMD("featureAttribute"),
	},
	GMD("MD_DataIdentification"): append(identificationOrder(),
		GMD("spatialRepresentationType"), GMD("spatialResolution"), GMD("language"), GMD("characterSet"),
		GMD("topicCategory"), GMD("environmentDescription"), GMD("extent"), GMD("supplementalInformation"),
	),
	SRV("SV_ServiceIdentification"): append(identificationOrder(),
		SRV("serviceType"), SRV("serviceTypeVersion"), SRV("accessProperties"), SRV("restrictions"),
		SRV("keywords"), SRV("extent"), SRV("coupledResource"), SRV("couplingType"),
		SRV("containsOperations"), SRV("operatesOn"),
	),
	GMD("CI_Citation"): {
		GMD("title"), GMD("alternateTitle"), GMD("date"), GMD("edition"), GMD("editionDate"),
		GMD("identifier"), GMD("citedResponsibleParty"), GMD("presentationForm"), GMD("series"),
		GMD("otherCitationDetails"), GMD("collectiveTitle"), GMD("ISBN"), GMD("ISSN"),
	},
	GMD("CI_Date"): {
		GMD("date"), GMD("dateType"),
	},
	GMD("MD_Keywords"): {
		GMD("keyword"), GMD("type"), GMD("thesaurusName"),
	},
	GMD("MD_Constraints"): {
		GMD("useLimitation"),
	},
	GMD("MD_LegalConstraints"): {
		GMD("useLimitation"), GMD("accessConstraints"), GMD("useConstraints"), GMD("otherConstraints"),
	},
	GMD("MD_SecurityConstraints"): {
		GMD("useLimitation"), GMD("classification"), GMD("userNote"), GMD("classificationSystem"),
		GMD("handlingDescription"),
	},
	GMD("EX_Extent"): {
		GMD("description"), GMD("geographicElement"), GMD("temporalElement"), GMD("verticalElement"),
	},
	GMD("EX_GeographicBoundingBox"): {
		GMD("extentTypeCode"), GMD("westBoundLongitude"), GMD("eastBoundLongitude"),
		GMD("southBoundLatitude"), GMD("northBoundLatitude"),
	},
	GML("TimePeriod"): {
		GML("description"), GML("name"), GML("beginPosition"), GML("begin"), GML("endPosition"), GML("end"),
	},
	GMD("MD_Distribution"): {
		GMD("distributionFormat"), GMD("distributor"), GMD("transferOptions"),
	},
	GMD("MD_Format"): {
		GMD("name"), GMD("version"), GMD("amendmentNumber"), GMD("specification"),
		GMD("fileDecompressionTechnique"), GMD("formatDistributor"),
	},
	GMD("MD_Distributor"): {
		GMD("distributorContact"), GMD("distributionOrderProcess"), GMD("distributorFormat"),
		GMD("distributorTransferOptions"),
	},
	GMD("MD_DigitalTransferOptions"): {
		GMD("unitsOfDistribution"), GMD("transferSize"), GMD("onLine"), GMD("offLine"),
	},
	GMD("CI_OnlineResource"): {
		GMD("linkage"), GMD("protocol"), GMD("applicationProfile"), GMD("name"), GMD("description"),
		GMD("function"),
	},
	GMD("CI_ResponsibleParty"): {
		GMD("individualName"), GMD("organisationName"), GMD("positionName"), GMD("contactInfo"), GMD("role"),
	},
	GMD("DQ_DataQuality"): {
		GMD("scope"), GMD("report"), GMD("lineage"),
	},
	GMD("DQ_ConformanceResult"): {
		GMD("specification"), GMD("explanation"), GMD("pass"),
	},
	GMD("DQ_QuantitativeResult"): {
		GMD("valueType"), GMD("valueUnit"), GMD("errorStatistic"), GMD("value"),
	},
	GMD("LI_Lineage"): {
		GMD("statement"), GMD("processStep"), GMD("source"),
	},
	GMD("MD_ReferenceSystem"): {
		GMD("referenceSystemIdentifier"),
	},
	GMD("RS_Identifier"): {
		GMD("authority"), GMD("code"), GMD("codeSpace"), GMD("version"),
	},
	GMD("MD_Identifier"): {
		GMD("authority"), GMD("code"),
	},
	GMD("MD_ApplicationSchemaInformation"): {
		GMD("name"), GMD("schemaLanguage"), GMD("constraintLanguage"), GMD("schemaAscii"),
		GMD("graphicsFile"), GMD("softwareDevelopmentFile"), GMD("softwareDevelopmentFileFormat"),
	},
	GMD("MD_BrowseGraphic"): {
		GMD("fileName"), GMD("fileDescription"), GMD("fileType"),
	},
	GMD("CI_Contact"): {
		GMD("phone"), GMD("address"), GMD("onlineResource"), GMD("hoursOfService"), GMD("contactInstructions"),
	},
	GMD("CI_Address"): {
		GMD("deliveryPoint"), GMD("city"), GMD("administrativeArea"), GMD("postalCode"), GMD("country"),
		GMD("electronicMailAddress"),
	},
	GMD("DQ_DomainConsistency"): {
		GMD("nameOfMeasure"), GMD("measureIdentification"), GMD("measureDescription"),
		GMD("evaluationMethodType"), GMD("evaluationMethodDescription"), GMD("evaluationProcedure"),
		GMD("dateTime"), GMD("result"),
	},
	GMD("MD_AggregateInformation"): {
		GMD("aggregateDataSetName"), GMD("aggregateDataSetIdentifier"), GMD("associationType"),
		GMD("initiativeType"),
	},
	GMD("MD_Usage"): {
		GMD("specificUsage"), GMD("usageDateTime"), GMD("userDeterminedLimitations"), GMD("userContactInfo"),
	},
	SRV("SV_OperationMetadata"): {
		SRV("operationName"), SRV("DCP"), SRV("operationDescription"), SRV("invocationName"),
		SRV("parameters"), SRV("connectPoint"), SRV("dependsOn"),
	},
}

func identificationOrder() []xml.Name {
	return []xml.Name{
		GMD("citation"), GMD("abstract"), GMD("purpose"), GMD("credit"), GMD("status"),
		GMD("pointOfContact"), GMD("resourceMaintenance"), GMD("graphicOverview"), GMD("resourceFormat"),
		GMD("descriptiveKeywords"), GMD("resourceSpecificUsage"), GMD("resourceConstraints"),
		GMD("aggregationInfo"),
	}
}

var childRank = func() map[xml.Name]map[xml.Name]int {
	ranks := make(map[xml.Name]map[xml.Name]int, len(childOrder))
	for parent, order := range childOrder {
		m := make(map[xml.Name]int, len(order))
		for i, name := range order {
			m[name] = i
		}
		ranks[parent] = m
	}
	return ranks
}()

// insertPosition returns the index where a child called name should be
// inserted into e.
func insertPosition(e *Element, name xml.Name) int {
	ranks, ok := childRank[e.Name]
	if !ok {
		return len(e.Children)
	}
	rank, ok := ranks[name]
	if !ok {
		return len(e.Children)
	}
	for i, c := range e.Children {
		if r, ok := ranks[c.Name]; ok && r > rank {
			return i
		}
	}
	return len(e.Children)
}
